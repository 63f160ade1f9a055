// Package repository defines data access contracts for the account
// domain.
package repository

import (
	"context"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data access
// operations.
type AccountRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository is the append-only journal of completed
// operations across all accounts. One entry is written per record an
// operation appends, so a transfer contributes two entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx *account.Transaction) error
	List(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error)
	All(ctx context.Context) ([]*account.Transaction, error)
}
