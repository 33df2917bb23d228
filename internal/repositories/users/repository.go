// Package users persists user records and answers lookups over them.
package users

import (
	"context"

	"github.com/dmitrijs2005/goteller/internal/models"
)

// Repository is the user directory contract. Lookup misses are reported as
// common.ErrorNotFound.
type Repository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	NextID(ctx context.Context) (int64, error)
}
