package domain

import "github.com/shopspring/decimal"

// Account is the single record a console session works on.
type Account struct {
	DepositorName string
	AccountNumber string
	AccountType   string
	Balance       decimal.Decimal
}

func NewAccount(depositorName, accountNumber, accountType string, balance decimal.Decimal) Account {
	return Account{
		DepositorName: depositorName,
		AccountNumber: accountNumber,
		AccountType:   accountType,
		Balance:       balance,
	}
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return ErrInvalidDepositAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw never takes the balance below zero.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidWithdrawalAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}
