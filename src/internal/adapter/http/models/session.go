package models

import (
	"errors"
	"fmt"
	"strings"
)

const MaxInputLines = 1000
const MaxLineLength = 1024

type RunSessionRequest struct {
	Input []string `json:"input"`
}

func (r RunSessionRequest) Validate() error {
	var errs []string

	if len(r.Input) == 0 {
		errs = append(errs, "input is required")
	}
	if len(r.Input) > MaxInputLines {
		errs = append(errs, fmt.Sprintf("input must not exceed %d lines", MaxInputLines))
	}
	for i, line := range r.Input {
		if len(line) > MaxLineLength {
			errs = append(errs, fmt.Sprintf("input line %d exceeds %d characters", i+1, MaxLineLength))
			break
		}
		if strings.ContainsAny(line, "\r\n") {
			errs = append(errs, fmt.Sprintf("input line %d must not contain line breaks", i+1))
			break
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type RunSessionResponse struct {
	Transcript string `json:"transcript"`
	Exited     bool   `json:"exited"`
	DurationMs int64  `json:"durationMs"`
}
