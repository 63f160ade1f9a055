package account

import (
	"errors"
	"fmt"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an operation amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when an account has insufficient funds for a withdrawal or transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTarget is returned when a transfer target is missing or cannot receive funds.
	ErrInvalidTarget = errors.New("invalid transfer target")

	// ErrSelfTransfer is returned when a transfer is attempted from an account to itself.
	ErrSelfTransfer = fmt.Errorf("%w: cannot transfer to same account", ErrInvalidTarget)

	// ErrAccountInactive is returned when an operation is attempted on an inactive account.
	ErrAccountInactive = errors.New("account is not active")

	// ErrAccountNotFound is returned when an account cannot be found.
	// It unwraps to domain.ErrNotFound.
	ErrAccountNotFound = fmt.Errorf("account not found: %w", domain.ErrNotFound)

	// ErrInvalidAccountString is returned when ParseAccount cannot parse
	// its input. It unwraps to domain.ErrValidation.
	ErrInvalidAccountString = fmt.Errorf("invalid account string: %w", domain.ErrValidation)
)

// InvalidAmountError reports a rejected operation amount. It unwraps to
// ErrInvalidAmount so callers can match with errors.Is.
type InvalidAmountError struct {
	Amount decimal.Decimal // the attempted amount
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s: must be a positive number", e.Amount)
}

func (e *InvalidAmountError) Unwrap() error { return ErrInvalidAmount }

// InsufficientFundsError reports a withdrawal or transfer that exceeds the
// current balance. It unwraps to ErrInsufficientFunds and carries the
// balance and attempted amount for caller diagnostics.
type InsufficientFundsError struct {
	Balance decimal.Decimal // balance at the time of the attempt
	Amount  decimal.Decimal // the attempted amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance = %s, attempted = %s", e.Balance, e.Amount)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }
