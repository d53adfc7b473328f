package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bank-account-console/src/internal/adapter/console"
	"github.com/api-sage/bank-account-console/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account-console/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-account-console/src/internal/commons"
	"github.com/api-sage/bank-account-console/src/internal/logger"
)

var ErrSessionTimeout = errors.New("Session timed out")

// SessionService replays scripted input through a fresh console session.
// Every run gets its own account, so concurrent runs share nothing.
type SessionService struct {
	timeout time.Duration
}

func NewSessionService(timeout time.Duration) *SessionService {
	return &SessionService{timeout: timeout}
}

func (s *SessionService) RunSession(ctx context.Context, req models.RunSessionRequest) (commons.Response[models.RunSessionResponse], error) {
	logger.Info("session service run session request", logger.Fields{
		"lines": len(req.Input),
	})

	if err := req.Validate(); err != nil {
		logger.Error("session service run session validation failed", err, nil)
		return commons.ErrorResponse[models.RunSessionResponse]("validation failed", err.Error()), err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	var transcript bytes.Buffer
	input := strings.NewReader(strings.Join(req.Input, "\n") + "\n")
	accountService := NewAccountService(memory.NewAccountRepository())
	session := console.NewSession(accountService, input, &transcript, console.WithColor(false))

	err := session.Run(ctx)
	response := models.RunSessionResponse{
		Transcript: transcript.String(),
		Exited:     err == nil,
		DurationMs: time.Since(start).Milliseconds(),
	}

	switch {
	case err == nil:
		logger.Info("session service run session exited", logger.Fields{"durationMs": response.DurationMs})
		return commons.SuccessResponse("session exited", response), nil
	case errors.Is(err, console.ErrInputClosed):
		logger.Info("session service run session input exhausted", logger.Fields{"durationMs": response.DurationMs})
		return commons.SuccessResponse("input exhausted before exit", response), nil
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("session service run session timed out", err, nil)
		resp := commons.ErrorResponse[models.RunSessionResponse](ErrSessionTimeout.Error())
		resp.Data = &response
		return resp, ErrSessionTimeout
	default:
		logger.Error("session service run session failed", err, nil)
		return commons.ErrorResponse[models.RunSessionResponse]("session failed", err.Error()), err
	}
}
