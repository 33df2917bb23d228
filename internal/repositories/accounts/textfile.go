package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goteller/internal/common"
	"github.com/dmitrijs2005/goteller/internal/linestore"
	"github.com/dmitrijs2005/goteller/internal/models"
)

// FileName is the record file the account directory owns inside the store.
const FileName = "accounts.csv"

// TextFileRepository implements Repository over a linestore.Store.
type TextFileRepository struct {
	store *linestore.Store
}

// NewTextFileRepository returns a repository bound to the given store.
func NewTextFileRepository(store *linestore.Store) *TextFileRepository {
	return &TextFileRepository{store: store}
}

// GetAll returns every stored account in file order. Malformed lines are
// silently skipped.
func (r *TextFileRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	lines, err := r.store.ReadLines(FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	result := make([]models.Account, 0, len(lines))
	for _, line := range lines {
		a, err := models.ParseAccount(line)
		if err != nil {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

// GetByID finds an account by its opaque id via a linear scan.
func (r *TextFileRepository) GetByID(ctx context.Context, accountID string) (*models.Account, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].AccountID == accountID {
			return &all[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

// GetByUserID returns all accounts owned by the given user, in file order.
func (r *TextFileRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Account, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Account, 0, len(all))
	for i := range all {
		if all[i].UserID == userID {
			result = append(result, all[i])
		}
	}
	return result, nil
}

// Save replaces the record with a matching account id or appends a new one,
// then rewrites the whole store.
func (r *TextFileRepository) Save(ctx context.Context, account *models.Account) error {
	err := r.store.Update(FileName, func(lines []string) ([]string, error) {
		updated := false
		result := make([]string, 0, len(lines)+1)
		for _, line := range lines {
			existing, err := models.ParseAccount(line)
			if err != nil {
				continue
			}
			if existing.AccountID == account.AccountID {
				result = append(result, account.Serialize())
				updated = true
			} else {
				result = append(result, line)
			}
		}
		if !updated {
			result = append(result, account.Serialize())
		}
		return result, nil
	})
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}
