package domain

import "context"

type AccountRepository interface {
	Save(ctx context.Context, account Account) (Account, error)
	Get(ctx context.Context) (Account, error)
	Update(ctx context.Context, mutate func(*Account) error) (Account, error)
}
