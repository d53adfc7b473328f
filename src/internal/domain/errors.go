package domain

import "errors"

var ErrInvalidDepositAmount = errors.New("Invalid deposit amount")
var ErrInvalidWithdrawalAmount = errors.New("Invalid withdrawal amount")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrInvalidMenuChoice = errors.New("Invalid choice")

func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidDepositAmount) || errors.Is(err, ErrInvalidWithdrawalAmount)
}
