// Package repository provides in-memory implementations of the data
// access contracts in pkg/repository. Nothing here survives process
// exit; durable storage is left to embedding callers.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/google/uuid"
)

// MemoryAccountRepository stores accounts in a map guarded by a RWMutex.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*account.Account
}

// NewMemoryAccountRepository creates an empty account store.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[uuid.UUID]*account.Account)}
}

// Get returns the account with the given id, or
// account.ErrAccountNotFound.
func (r *MemoryAccountRepository) Get(_ context.Context, id uuid.UUID) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", account.ErrAccountNotFound, id)
	}
	return a, nil
}

// Create registers a new account. The id must not already be taken.
func (r *MemoryAccountRepository) Create(_ context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; ok {
		return fmt.Errorf("%w: account %s", domain.ErrAlreadyExists, a.ID)
	}
	r.accounts[a.ID] = a
	return nil
}

// Update writes back a mutated account. The account must already be
// registered.
func (r *MemoryAccountRepository) Update(_ context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; !ok {
		return fmt.Errorf("%w: %s", account.ErrAccountNotFound, a.ID)
	}
	r.accounts[a.ID] = a
	return nil
}

// Delete removes the account with the given id.
func (r *MemoryAccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return fmt.Errorf("%w: %s", account.ErrAccountNotFound, id)
	}
	delete(r.accounts, id)
	return nil
}

// MemoryTransactionJournal is an append-only, in-memory transaction
// journal.
type MemoryTransactionJournal struct {
	mu      sync.RWMutex
	entries []*account.Transaction
}

// NewMemoryTransactionJournal creates an empty journal.
func NewMemoryTransactionJournal() *MemoryTransactionJournal {
	return &MemoryTransactionJournal{}
}

// Create appends tx to the journal.
func (j *MemoryTransactionJournal) Create(_ context.Context, tx *account.Transaction) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	entry := *tx
	j.entries = append(j.entries, &entry)
	return nil
}

// List returns the journal entries for one account, oldest first.
func (j *MemoryTransactionJournal) List(_ context.Context, accountID uuid.UUID) ([]*account.Transaction, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []*account.Transaction
	for _, tx := range j.entries {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// All returns every journal entry, oldest first.
func (j *MemoryTransactionJournal) All(_ context.Context) ([]*account.Transaction, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*account.Transaction, len(j.entries))
	copy(out, j.entries)
	return out, nil
}
