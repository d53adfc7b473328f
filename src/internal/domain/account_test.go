package domain_test

import (
	"testing"

	"github.com/api-sage/bank-account-console/src/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(balance string) domain.Account {
	return domain.NewAccount("Ada", "0123456789", "Savings", decimal.RequireFromString(balance))
}

func TestAccountDepositAddsExactAmount(t *testing.T) {
	for _, amount := range []string{"0.01", "1", "50", "123456789.987654321"} {
		acc := newAccount("100")
		require.NoError(t, acc.Deposit(decimal.RequireFromString(amount)))
		want := decimal.RequireFromString("100").Add(decimal.RequireFromString(amount))
		assert.True(t, want.Equal(acc.Balance), "deposit %s: balance=%s want=%s", amount, acc.Balance, want)
	}
}

func TestAccountDepositRejectsNonPositive(t *testing.T) {
	for _, amount := range []string{"0", "-0.01", "-5"} {
		acc := newAccount("100")
		err := acc.Deposit(decimal.RequireFromString(amount))
		require.ErrorIs(t, err, domain.ErrInvalidDepositAmount)
		assert.True(t, domain.IsInvalidAmount(err))
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)))
	}
}

func TestAccountWithdrawRejectsNonPositive(t *testing.T) {
	for _, amount := range []string{"0", "-1"} {
		acc := newAccount("100")
		err := acc.Withdraw(decimal.RequireFromString(amount))
		require.ErrorIs(t, err, domain.ErrInvalidWithdrawalAmount)
		assert.True(t, domain.IsInvalidAmount(err))
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)))
	}
}

func TestAccountWithdrawRejectsMoreThanBalance(t *testing.T) {
	for _, amount := range []string{"100.01", "200", "1000000"} {
		acc := newAccount("100")
		require.ErrorIs(t, acc.Withdraw(decimal.RequireFromString(amount)), domain.ErrInsufficientBalance)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)))
	}
}

func TestAccountWithdrawSubtractsExactAmount(t *testing.T) {
	for _, amount := range []string{"0.01", "40", "99.99", "100"} {
		acc := newAccount("100")
		require.NoError(t, acc.Withdraw(decimal.RequireFromString(amount)))
		want := decimal.NewFromInt(100).Sub(decimal.RequireFromString(amount))
		assert.True(t, want.Equal(acc.Balance), "withdraw %s: balance=%s want=%s", amount, acc.Balance, want)
		assert.False(t, acc.Balance.IsNegative())
	}
}

func TestAccountWithdrawFromNegativeOpeningBalance(t *testing.T) {
	acc := newAccount("-10")
	require.ErrorIs(t, acc.Withdraw(decimal.NewFromInt(1)), domain.ErrInsufficientBalance)
	require.NoError(t, acc.Deposit(decimal.NewFromInt(15)))
	assert.Equal(t, "5", acc.Balance.String())
}

func TestAccountScenario(t *testing.T) {
	acc := newAccount("100.0")

	require.NoError(t, acc.Deposit(decimal.NewFromInt(50)))
	assert.Equal(t, "150", acc.Balance.String())

	require.ErrorIs(t, acc.Withdraw(decimal.NewFromInt(200)), domain.ErrInsufficientBalance)
	assert.Equal(t, "150", acc.Balance.String())

	require.NoError(t, acc.Withdraw(decimal.NewFromInt(150)))
	assert.Equal(t, "0", acc.Balance.String())

	require.ErrorIs(t, acc.Deposit(decimal.NewFromInt(-5)), domain.ErrInvalidDepositAmount)
	assert.Equal(t, "0", acc.Balance.String())
}
