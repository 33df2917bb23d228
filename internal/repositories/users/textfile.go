package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goteller/internal/common"
	"github.com/dmitrijs2005/goteller/internal/linestore"
	"github.com/dmitrijs2005/goteller/internal/models"
)

// FileName is the record file the user directory owns inside the store.
const FileName = "users.csv"

// TextFileRepository implements Repository over a linestore.Store.
// Every mutation rewrites the whole record file.
type TextFileRepository struct {
	store *linestore.Store
}

// NewTextFileRepository returns a repository bound to the given store.
func NewTextFileRepository(store *linestore.Store) *TextFileRepository {
	return &TextFileRepository{store: store}
}

// GetAll returns every stored user in file order. Malformed lines are
// silently skipped.
func (r *TextFileRepository) GetAll(ctx context.Context) ([]models.User, error) {
	lines, err := r.store.ReadLines(FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	result := make([]models.User, 0, len(lines))
	for _, line := range lines {
		u, err := models.ParseUser(line)
		if err != nil {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

// GetByID finds a user by id via a linear scan.
func (r *TextFileRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

// GetByUsername finds a user by exact, case-sensitive username match.
func (r *TextFileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Username == username {
			return &all[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

// Save replaces the record with a matching id or appends a new one, then
// rewrites the whole store.
func (r *TextFileRepository) Save(ctx context.Context, user *models.User) error {
	err := r.store.Update(FileName, func(lines []string) ([]string, error) {
		updated := false
		result := make([]string, 0, len(lines)+1)
		for _, line := range lines {
			existing, err := models.ParseUser(line)
			if err != nil {
				continue
			}
			if existing.ID == user.ID {
				result = append(result, user.Serialize())
				updated = true
			} else {
				result = append(result, line)
			}
		}
		if !updated {
			result = append(result, user.Serialize())
		}
		return result, nil
	})
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// NextID returns max(existing ids)+1, or 1 for an empty store.
func (r *TextFileRepository) NextID(ctx context.Context) (int64, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	var maxID int64
	for i := range all {
		if all[i].ID > maxID {
			maxID = all[i].ID
		}
	}
	return maxID + 1, nil
}
