package models

import "github.com/shopspring/decimal"

// OpenAccountRequest is taken as entered. Empty fields and negative
// opening balances are allowed.
type OpenAccountRequest struct {
	DepositorName  string          `json:"depositorName"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

type AccountResponse struct {
	DepositorName string `json:"depositorName"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
}

type DepositFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type DepositFundsResponse struct {
	DepositedAmount string `json:"depositedAmount"`
	Balance         string `json:"balance"`
}

type WithdrawFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type WithdrawFundsResponse struct {
	WithdrawnAmount string `json:"withdrawnAmount"`
	Balance         string `json:"balance"`
}
