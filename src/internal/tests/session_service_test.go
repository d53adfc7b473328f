package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/api-sage/bank-account-console/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account-console/src/internal/usecase/service_interfaces"
	"github.com/api-sage/bank-account-console/src/internal/usecase/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service_interfaces.SessionService = (*services.SessionService)(nil)

func TestSessionServiceRunSessionExited(t *testing.T) {
	svc := services.NewSessionService(time.Second)

	resp, err := svc.RunSession(context.Background(), models.RunSessionRequest{
		Input: []string{"Ada", "0123456789", "Savings", "100", "1", "50", "4"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.Exited)
	assert.Contains(t, resp.Data.Transcript, "Amount deposited successfully.\nBalance: 150\n")
	assert.Contains(t, resp.Data.Transcript, "Exiting Program")
}

func TestSessionServiceRunSessionInputExhausted(t *testing.T) {
	svc := services.NewSessionService(time.Second)

	resp, err := svc.RunSession(context.Background(), models.RunSessionRequest{
		Input: []string{"Ada", "0123456789", "Savings", "100", "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "input exhausted before exit", resp.Message)
	assert.False(t, resp.Data.Exited)
	assert.Contains(t, resp.Data.Transcript, "Balance Amount: 100\n")
}

func TestSessionServiceRunSessionValidationError(t *testing.T) {
	svc := services.NewSessionService(time.Second)

	resp, err := svc.RunSession(context.Background(), models.RunSessionRequest{})
	require.Error(t, err)
	assert.Equal(t, "validation failed", resp.Message)
}

func TestSessionServiceRunSessionTimeout(t *testing.T) {
	svc := services.NewSessionService(time.Second)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	resp, err := svc.RunSession(ctx, models.RunSessionRequest{
		Input: []string{"Ada", "0123456789", "Savings", "100", "4"},
	})
	require.ErrorIs(t, err, services.ErrSessionTimeout)
	require.NotNil(t, resp.Data)
	assert.False(t, resp.Data.Exited)
}

func TestSessionServiceRunsAreIsolated(t *testing.T) {
	svc := services.NewSessionService(time.Second)

	var wg sync.WaitGroup
	results := make([]string, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.RunSession(context.Background(), models.RunSessionRequest{
				Input: []string{"Ada", "1", "Savings", "10", "1", "5", "3", "4"},
			})
			if assert.NoError(t, err) {
				results[i] = resp.Data.Transcript
			}
		}(i)
	}
	wg.Wait()

	for _, transcript := range results {
		assert.Contains(t, transcript, "Balance Amount: 15\n")
	}
}
