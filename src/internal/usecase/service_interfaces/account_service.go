package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-account-console/src/internal/adapter/console/models"
	"github.com/api-sage/bank-account-console/src/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context) (commons.Response[models.AccountResponse], error)
	DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error)
	WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error)
}
