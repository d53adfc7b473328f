package console

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReaderReadLine(t *testing.T) {
	r := newLineReader(strings.NewReader("Ada Lovelace\r\n  spaced  \nlast"))

	line, err := r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", line)

	line, err = r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", line)

	line, err = r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.readLine()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestLineReaderReadChoice(t *testing.T) {
	r := newLineReader(strings.NewReader(" 2 \nx\n-1\n"))

	for _, want := range []int{2, 0, -1} {
		got, err := r.readChoice()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLineReaderReadAmount(t *testing.T) {
	r := newLineReader(strings.NewReader("12.50\nabc\n-3\n"))

	amount, ok, err := r.readAmount()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12.5", amount.String())

	amount, ok, err = r.readAmount()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, amount.IsZero())

	amount, ok, err = r.readAmount()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "-3", amount.String())
}

func TestLineReaderWrapsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	r := newLineReader(iotest.ErrReader(boom))

	_, err := r.readLine()
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestLineReaderReadsVeryLongLines(t *testing.T) {
	long := strings.Repeat("n", 200*1024)
	r := newLineReader(strings.NewReader(long + "\nnext"))

	line, err := r.readLine()
	require.NoError(t, err)
	assert.Len(t, line, len(long))

	line, err = r.readLine()
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}
