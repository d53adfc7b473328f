package services

import (
	"context"
	"errors"

	"github.com/api-sage/bank-account-console/src/internal/adapter/console/models"
	"github.com/api-sage/bank-account-console/src/internal/commons"
	"github.com/api-sage/bank-account-console/src/internal/domain"
	"github.com/api-sage/bank-account-console/src/internal/logger"
)

const (
	MessageAccountOpened = "Account opened successfully"
	MessageDeposited     = "Amount deposited successfully"
	MessageWithdrawn     = "Amount withdrawn successfully"
	MessageFetched       = "Account fetched successfully"
)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account := domain.NewAccount(req.DepositorName, req.AccountNumber, req.AccountType, req.InitialBalance)

	created, err := s.accountRepo.Save(ctx, account)
	if err != nil {
		logger.Error("account service open account repository failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", err.Error()), err
	}

	response := toAccountResponse(created)

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(MessageAccountOpened, response), nil
}

func (s *AccountService) GetAccount(ctx context.Context) (commons.Response[models.AccountResponse], error) {
	account, err := s.accountRepo.Get(ctx)
	if err != nil {
		logger.Error("account service get account failed", err, nil)
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", err.Error()), err
	}

	response := toAccountResponse(account)

	logger.Info("account service get account success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse(MessageFetched, response), nil
}

func (s *AccountService) DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error) {
	logger.Info("account service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, err := s.accountRepo.Update(ctx, func(a *domain.Account) error {
		return a.Deposit(req.Amount)
	})
	if err != nil {
		logger.Error("account service deposit funds failed", err, logger.Fields{
			"amount": req.Amount.String(),
		})
		return commons.FailedResponse[models.DepositFundsResponse](err), err
	}

	response := models.DepositFundsResponse{
		DepositedAmount: req.Amount.String(),
		Balance:         account.Balance.String(),
	}

	logger.Info("account service deposit funds success", logger.Fields{
		"depositedAmount": response.DepositedAmount,
		"balance":         response.Balance,
	})

	return commons.SuccessResponse(MessageDeposited, response), nil
}

func (s *AccountService) WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error) {
	logger.Info("account service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, err := s.accountRepo.Update(ctx, func(a *domain.Account) error {
		return a.Withdraw(req.Amount)
	})
	if err != nil {
		logger.Error("account service withdraw funds failed", err, logger.Fields{
			"amount":  req.Amount.String(),
			"balance": account.Balance.String(),
		})
		return commons.FailedResponse[models.WithdrawFundsResponse](err), err
	}

	response := models.WithdrawFundsResponse{
		WithdrawnAmount: req.Amount.String(),
		Balance:         account.Balance.String(),
	}

	logger.Info("account service withdraw funds success", logger.Fields{
		"withdrawnAmount": response.WithdrawnAmount,
		"balance":         response.Balance,
	})

	return commons.SuccessResponse(MessageWithdrawn, response), nil
}

func toAccountResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		DepositorName: account.DepositorName,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Balance:       account.Balance.String(),
	}
}
