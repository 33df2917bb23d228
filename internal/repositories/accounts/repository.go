// Package accounts persists ledger accounts and answers lookups over them.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/goteller/internal/models"
)

// Repository is the account directory contract. Lookup misses are reported
// as common.ErrorNotFound.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, accountID string) (*models.Account, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Account, error)
	Save(ctx context.Context, account *models.Account) error
}
