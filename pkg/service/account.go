// Package service provides business logic for interacting with domain
// entities such as accounts and transactions. It defines the
// AccountService struct and its methods for opening accounts, depositing
// and withdrawing funds, transferring between accounts, and reading
// balances and the transaction journal.
package service

import (
	"context"
	"log/slog"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/eventbus"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountService provides methods to operate on accounts through a
// repository, journaling every completed operation and publishing a
// domain event for each.
type AccountService struct {
	accounts repository.AccountRepository
	journal  repository.TransactionRepository
	bus      eventbus.Bus
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService. A nil logger falls
// back to slog.Default.
func NewAccountService(
	accounts repository.AccountRepository,
	journal repository.TransactionRepository,
	bus eventbus.Bus,
	logger *slog.Logger,
) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		accounts: accounts,
		journal:  journal,
		bus:      bus,
		logger:   logger,
	}
}

// Open creates a zero-balance account for owner and registers it.
func (s *AccountService) Open(ctx context.Context, owner string) (*account.Account, error) {
	return s.OpenWithBalance(ctx, owner, decimal.Zero)
}

// OpenWithBalance creates an account with an explicit opening balance and
// registers it.
func (s *AccountService) OpenWithBalance(ctx context.Context, owner string, balance decimal.Decimal) (*account.Account, error) {
	a, err := account.New().WithOwner(owner).WithBalance(balance).Build()
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		s.logger.Error("failed to register account", "owner", owner, "error", err)
		return nil, err
	}
	s.logger.Info("account opened", "account_id", a.ID, "owner", owner, "balance", balance)
	return a, nil
}

// Deposit adds funds to the account and journals the resulting record.
func (s *AccountService) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*account.Transaction, error) {
	a, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	tx, err := a.Deposit(amount)
	if err != nil {
		s.logger.Error("deposit rejected", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}
	if err := s.accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	if err := s.journal.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.publish(ctx, account.Deposited{AccountID: a.ID, Amount: amount, Balance: tx.Balance})
	s.logger.Info("deposit completed", "account_id", a.ID, "amount", amount, "balance", tx.Balance)
	return tx, nil
}

// Withdraw removes funds from the account and journals the resulting
// record.
func (s *AccountService) Withdraw(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*account.Transaction, error) {
	a, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	tx, err := a.Withdraw(amount)
	if err != nil {
		s.logger.Error("withdrawal rejected", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}
	if err := s.accounts.Update(ctx, a); err != nil {
		return nil, err
	}
	if err := s.journal.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.publish(ctx, account.Withdrawn{AccountID: a.ID, Amount: amount, Balance: tx.Balance})
	s.logger.Info("withdrawal completed", "account_id", a.ID, "amount", amount, "balance", tx.Balance)
	return tx, nil
}

// Transfer moves amount from the sender account to the receiver account.
// Both legs are journaled and a single TransferCompleted event is
// published.
func (s *AccountService) Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount decimal.Decimal) (out, in *account.Transaction, err error) {
	sender, err := s.accounts.Get(ctx, senderID)
	if err != nil {
		return nil, nil, err
	}
	receiver, err := s.accounts.Get(ctx, receiverID)
	if err != nil {
		return nil, nil, err
	}
	out, in, err = sender.TransferTo(receiver, amount)
	if err != nil {
		s.logger.Error("transfer rejected",
			"sender_id", senderID, "receiver_id", receiverID, "amount", amount, "error", err)
		return nil, nil, err
	}
	if err := s.accounts.Update(ctx, sender); err != nil {
		return nil, nil, err
	}
	if err := s.accounts.Update(ctx, receiver); err != nil {
		return nil, nil, err
	}
	if err := s.journal.Create(ctx, out); err != nil {
		return nil, nil, err
	}
	if err := s.journal.Create(ctx, in); err != nil {
		return nil, nil, err
	}
	s.publish(ctx, account.TransferCompleted{SenderID: senderID, ReceiverID: receiverID, Amount: amount})
	s.logger.Info("transfer completed",
		"sender_id", senderID, "receiver_id", receiverID, "amount", amount)
	return out, in, nil
}

// Balance returns the current balance of the account.
func (s *AccountService) Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	a, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance(), nil
}

// Transactions returns the journal entries for the account, oldest
// first.
func (s *AccountService) Transactions(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	return s.journal.List(ctx, accountID)
}

func (s *AccountService) publish(ctx context.Context, event domain.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.Type(), "error", err)
	}
}
