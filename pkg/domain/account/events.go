package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposited is published after funds are added to an account.
type Deposited struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Balance   decimal.Decimal // balance after the deposit
}

// Type implements domain.Event.
func (Deposited) Type() string { return "Account.Deposited" }

// Withdrawn is published after funds are removed from an account.
type Withdrawn struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Balance   decimal.Decimal // balance after the withdrawal
}

// Type implements domain.Event.
func (Withdrawn) Type() string { return "Account.Withdrawn" }

// TransferCompleted is published once per transfer, after both legs have
// committed.
type TransferCompleted struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Amount     decimal.Decimal
}

// Type implements domain.Event.
func (TransferCompleted) Type() string { return "Account.TransferCompleted" }
