package memory

import (
	"context"

	"github.com/api-sage/bank-account-console/src/internal/commons"
	"github.com/api-sage/bank-account-console/src/internal/domain"
)

// AccountRepository holds the one account of a console session.
// It is not safe for concurrent use; each session owns its own instance.
type AccountRepository struct {
	account *domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Save(_ context.Context, account domain.Account) (domain.Account, error) {
	stored := account
	r.account = &stored
	return stored, nil
}

func (r *AccountRepository) Get(_ context.Context) (domain.Account, error) {
	if r.account == nil {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	return *r.account, nil
}

// Update runs mutate on a copy and keeps it only when mutate succeeds.
func (r *AccountRepository) Update(_ context.Context, mutate func(*domain.Account) error) (domain.Account, error) {
	if r.account == nil {
		return domain.Account{}, commons.ErrRecordNotFound
	}

	working := *r.account
	if err := mutate(&working); err != nil {
		return *r.account, err
	}

	r.account = &working
	return working, nil
}
