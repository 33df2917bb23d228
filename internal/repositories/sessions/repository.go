// Package sessions persists session records and answers token lookups.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/goteller/internal/models"
)

// Repository is the session directory contract. Lookup misses are reported
// as common.ErrorNotFound.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Session, error)
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	DeleteByToken(ctx context.Context, token string) error
}
