package account

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status describes whether an account accepts operations.
type Status string

// Account statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Account represents a bank account, encapsulating its balance and
// transaction history. It acts as an aggregate root, ensuring all state
// changes are consistent and valid.
//
// Invariants:
//   - The balance can never be negative.
//   - The history is append-only and chronological; every successful
//     operation appends exactly one record, failed operations append
//     nothing.
//   - All operations are thread-safe, enforced by a per-account mutex.
type Account struct {
	ID        uuid.UUID
	Owner     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	balance decimal.Decimal
	history []Transaction
	mu      sync.Mutex
}

// Builder provides a fluent API for constructing Account instances,
// ensuring that only valid accounts are constructed.
type Builder struct {
	id      uuid.UUID
	owner   string
	status  Status
	balance decimal.Decimal
	created time.Time
}

// New creates a new Builder with sensible defaults: a fresh UUID, active
// status and a zero balance.
func New() *Builder {
	return &Builder{
		id:      uuid.New(),
		status:  StatusActive,
		created: time.Now().UTC(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithOwner sets the owner name for the account being built. This is a
// mandatory field.
func (b *Builder) WithOwner(owner string) *Builder {
	b.owner = owner
	return b
}

// WithBalance sets the opening balance for the account.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithStatus sets the status for the account being built. If not set, it
// defaults to active.
func (b *Builder) WithStatus(status Status) *Builder {
	b.status = status
	return b
}

// WithCreatedAt sets the creation timestamp. This is primarily for
// hydrating an existing account from a data store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.created = t
	return b
}

// Build finalizes the construction of the Account. It validates all
// invariants, such as a present owner and a non-negative opening balance,
// before returning the new Account instance.
func (b *Builder) Build() (*Account, error) {
	if b.owner == "" {
		return nil, errors.New("owner is required")
	}
	if b.status != StatusActive && b.status != StatusInactive {
		return nil, fmt.Errorf("invalid account status %q", b.status)
	}
	if b.balance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", ErrInvalidAmount)
	}
	return &Account{
		ID:        b.id,
		Owner:     b.owner,
		Status:    b.status,
		CreatedAt: b.created,
		UpdatedAt: b.created,
		balance:   b.balance,
	}, nil
}

// Open creates a zero-balance active account for the named owner with an
// empty history.
func Open(owner string) (*Account, error) {
	return New().WithOwner(owner).Build()
}

// accountString is the shape accepted by ParseAccount.
type accountString struct {
	Owner   string `validate:"required"`
	Balance string `validate:"required"`
	Status  string `validate:"oneof=active inactive"`
}

var validate = validator.New()

// ParseAccount creates an Account from a semicolon-delimited string of
// the form "owner;balance;status".
func ParseAccount(s string) (*Account, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want %q, got %q", ErrInvalidAccountString, "owner;balance;status", s)
	}
	in := accountString{
		Owner:   strings.TrimSpace(parts[0]),
		Balance: strings.TrimSpace(parts[1]),
		Status:  strings.TrimSpace(parts[2]),
	}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountString, err)
	}
	balance, err := decimal.NewFromString(in.Balance)
	if err != nil {
		return nil, fmt.Errorf("%w: balance %q is not a number", ErrInvalidAccountString, in.Balance)
	}
	a, err := New().
		WithOwner(in.Owner).
		WithBalance(balance).
		WithStatus(Status(in.Status)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountString, err)
	}
	return a, nil
}

// validAmount checks that an operation amount is strictly positive. It is
// free of side effects so every operation can validate before mutating
// any state.
func validAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return &InvalidAmountError{Amount: amount}
	}
	return nil
}

func (a *Account) ensureActive() error {
	if a.Status != StatusActive {
		return fmt.Errorf("%w: account %s", ErrAccountInactive, a.ID)
	}
	return nil
}

// credit assumes validation has passed and a.mu is held.
func (a *Account) credit(kind Kind, amount decimal.Decimal, counterparty *uuid.UUID, at time.Time) *Transaction {
	a.balance = a.balance.Add(amount)
	a.UpdatedAt = at
	tx := newTransaction(a.ID, kind, amount, a.balance, counterparty, at)
	a.history = append(a.history, tx)
	return &tx
}

// debit assumes validation has passed and a.mu is held.
func (a *Account) debit(kind Kind, amount decimal.Decimal, counterparty *uuid.UUID, at time.Time) *Transaction {
	a.balance = a.balance.Sub(amount)
	a.UpdatedAt = at
	tx := newTransaction(a.ID, kind, amount, a.balance, counterparty, at)
	a.history = append(a.history, tx)
	return &tx
}

// Deposit adds funds to the account and returns the appended record.
// Invariants enforced:
//   - The account must be active.
//   - The amount must be strictly positive.
func (a *Account) Deposit(amount decimal.Decimal) (*Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureActive(); err != nil {
		return nil, err
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	return a.credit(KindDeposit, amount, nil, time.Now().UTC()), nil
}

// Withdraw removes funds from the account and returns the appended record.
// Invariants enforced:
//   - The account must be active.
//   - The amount must be strictly positive.
//   - The amount must not exceed the current balance.
func (a *Account) Withdraw(amount decimal.Decimal) (*Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureActive(); err != nil {
		return nil, err
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	if amount.GreaterThan(a.balance) {
		return nil, &InsufficientFundsError{Balance: a.balance, Amount: amount}
	}
	return a.debit(KindWithdrawal, amount, nil, time.Now().UTC()), nil
}

// TransferTo moves amount from the account to dest. The transfer is
// atomic: both balances move and both records append, or nothing changes.
// The two records share the same amount and timestamp and reference the
// counterparty's id.
//
// The two account locks are acquired in uuid byte order so concurrent
// transfers in opposite directions cannot deadlock.
func (a *Account) TransferTo(dest *Account, amount decimal.Decimal) (out, in *Transaction, err error) {
	if dest == nil {
		return nil, nil, fmt.Errorf("%w: nil account", ErrInvalidTarget)
	}
	if dest.ID == a.ID {
		return nil, nil, ErrSelfTransfer
	}

	first, second := a, dest
	if bytes.Compare(dest.ID[:], a.ID[:]) < 0 {
		first, second = dest, a
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := a.ensureActive(); err != nil {
		return nil, nil, err
	}
	if dest.Status != StatusActive {
		return nil, nil, fmt.Errorf("%w: target account %s is inactive", ErrInvalidTarget, dest.ID)
	}
	if err := validAmount(amount); err != nil {
		return nil, nil, err
	}
	if amount.GreaterThan(a.balance) {
		return nil, nil, &InsufficientFundsError{Balance: a.balance, Amount: amount}
	}

	now := time.Now().UTC()
	out = a.debit(KindTransferOut, amount, &dest.ID, now)
	in = dest.credit(KindTransferIn, amount, &a.ID, now)
	return out, in, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the transaction history in chronological
// order. Mutating the returned slice does not affect the account.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// String returns an unambiguous representation for debugging.
func (a *Account) String() string {
	return fmt.Sprintf("Account(owner=%q, id=%s, balance=%s, status=%s)",
		a.Owner, a.ID, a.Balance(), a.Status)
}
