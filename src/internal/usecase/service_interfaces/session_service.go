package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-account-console/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account-console/src/internal/commons"
)

type SessionService interface {
	RunSession(ctx context.Context, req models.RunSessionRequest) (commons.Response[models.RunSessionResponse], error)
}
