package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction record.
type Kind string

// Transaction kinds written by account operations.
const (
	KindDeposit     Kind = "deposit"
	KindWithdrawal  Kind = "withdrawal"
	KindTransferOut Kind = "transfer_out"
	KindTransferIn  Kind = "transfer_in"
)

// Transaction is an immutable record of one completed account operation.
//
// Invariants:
//   - Amount is always positive, regardless of Kind.
//   - Balance is the account balance immediately after the operation, so
//     replaying a history in order from the opening balance reproduces
//     every snapshot.
//   - Counterparty is set only for transfer kinds and references the
//     other account.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Kind         Kind
	Amount       decimal.Decimal
	Balance      decimal.Decimal // account balance snapshot after the operation
	Counterparty *uuid.UUID      // other account, transfer kinds only
	CreatedAt    time.Time
}

// NewTransactionFromData creates a Transaction from raw data (used for
// journal hydration or test fixtures). This bypasses invariants; all
// business transaction creation must go through Account operations.
func NewTransactionFromData(
	id, accountID uuid.UUID,
	kind Kind,
	amount, balance decimal.Decimal,
	counterparty *uuid.UUID,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:           id,
		AccountID:    accountID,
		Kind:         kind,
		Amount:       amount,
		Balance:      balance,
		Counterparty: counterparty,
		CreatedAt:    created,
	}
}

// newTransaction records a completed operation on the account identified
// by accountID. Intended for internal use by the Account aggregate.
func newTransaction(
	accountID uuid.UUID,
	kind Kind,
	amount, balance decimal.Decimal,
	counterparty *uuid.UUID,
	at time.Time,
) Transaction {
	return Transaction{
		ID:           uuid.New(),
		AccountID:    accountID,
		Kind:         kind,
		Amount:       amount,
		Balance:      balance,
		Counterparty: counterparty,
		CreatedAt:    at,
	}
}
