// Package bank implements the ledger operations: opening accounts,
// deposits, withdrawals and balance inquiries, always scoped to the
// authenticated user.
package bank

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/goteller/internal/common"
	"github.com/dmitrijs2005/goteller/internal/logging"
	"github.com/dmitrijs2005/goteller/internal/models"
	"github.com/dmitrijs2005/goteller/internal/repositories/accounts"
)

// Service exposes ledger operations over the account directory. A user id
// of 0 means "no authenticated user" and is rejected outright; accounts
// owned by other users are reported as not found rather than forbidden.
type Service struct {
	accounts accounts.Repository
	log      logging.Logger
}

// NewService wires a Service to the account directory.
func NewService(accountRepo accounts.Repository, log logging.Logger) *Service {
	return &Service{accounts: accountRepo, log: log.With("component", "bank")}
}

// OpenAccount creates a new account for the user with a generated id.
// A negative initial balance is rejected; zero is fine.
func (s *Service) OpenAccount(ctx context.Context, userID int64, name string, initialBalance float64) (*models.Account, error) {
	if userID <= 0 {
		return nil, common.ErrorUnauthorized
	}
	if initialBalance < 0 {
		return nil, common.ErrInvalidAmount
	}

	account := &models.Account{
		UserID:    userID,
		AccountID: uuid.NewString(),
		Name:      name,
		Balance:   initialBalance,
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	s.log.Info(ctx, "account opened", "user_id", userID, "account_id", account.AccountID)
	return account, nil
}

// Deposit adds amount to the user's account and persists the new balance.
func (s *Service) Deposit(ctx context.Context, userID int64, accountID string, amount float64) (*models.Account, error) {
	account, err := s.getOwned(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if err := account.Deposit(amount); err != nil {
		return nil, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save deposit: %w", err)
	}
	return account, nil
}

// Withdraw removes amount from the user's account and persists the new
// balance. Overdrafts are rejected.
func (s *Service) Withdraw(ctx context.Context, userID int64, accountID string, amount float64) (*models.Account, error) {
	account, err := s.getOwned(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if err := account.Withdraw(amount); err != nil {
		return nil, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save withdrawal: %w", err)
	}
	return account, nil
}

// Balance returns the current balance of the user's account.
func (s *Service) Balance(ctx context.Context, userID int64, accountID string) (float64, error) {
	account, err := s.getOwned(ctx, userID, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// ListByUser returns all accounts owned by the user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]models.Account, error) {
	if userID <= 0 {
		return nil, common.ErrorUnauthorized
	}
	return s.accounts.GetByUserID(ctx, userID)
}

// getOwned fetches an account and checks ownership. Foreign accounts look
// exactly like missing ones to the caller.
func (s *Service) getOwned(ctx context.Context, userID int64, accountID string) (*models.Account, error) {
	if userID <= 0 {
		return nil, common.ErrorUnauthorized
	}
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return account, nil
}
