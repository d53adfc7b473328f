package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when input ends before the user chooses to exit.
var ErrInputClosed = errors.New("input closed before exit")

// lineReader reads whole lines of any length.
type lineReader struct {
	reader *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (r *lineReader) readLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// A final line without a newline still counts.
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readChoice returns 0 for anything that is not an integer.
func (r *lineReader) readChoice() (int, error) {
	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	choice, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, nil
	}
	return choice, nil
}

// readAmount reports ok=false for anything decimal cannot parse.
func (r *lineReader) readAmount() (amount decimal.Decimal, ok bool, err error) {
	line, err := r.readLine()
	if err != nil {
		return decimal.Zero, false, err
	}
	amount, parseErr := decimal.NewFromString(strings.TrimSpace(line))
	if parseErr != nil {
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}
