package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/goteller/internal/common"
	"github.com/dmitrijs2005/goteller/internal/linestore"
	"github.com/dmitrijs2005/goteller/internal/models"
)

// FileName is the record file the session directory owns inside the store.
const FileName = "sessions.csv"

// TextFileRepository implements Repository over a linestore.Store.
type TextFileRepository struct {
	store *linestore.Store

	// now is a test seam for expiry pruning.
	now func() time.Time
}

// NewTextFileRepository returns a repository bound to the given store.
func NewTextFileRepository(store *linestore.Store) *TextFileRepository {
	return &TextFileRepository{store: store, now: time.Now}
}

// GetAll returns every stored session in file order. Malformed lines are
// silently skipped.
func (r *TextFileRepository) GetAll(ctx context.Context) ([]models.Session, error) {
	lines, err := r.store.ReadLines(FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	result := make([]models.Session, 0, len(lines))
	for _, line := range lines {
		s, err := models.ParseSession(line)
		if err != nil {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

// GetByToken finds a session by token via a linear scan. Expired sessions
// are still returned; validity is the caller's concern.
func (r *TextFileRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Token == token {
			return &all[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

// Save replaces the record with a matching token or appends a new one, then
// drops every session that has already expired. This is the only expiry
// cleanup point in the system; expired sessions linger until the next save.
func (r *TextFileRepository) Save(ctx context.Context, session *models.Session) error {
	now := r.now()
	err := r.store.Update(FileName, func(lines []string) ([]string, error) {
		updated := false
		parsed := make([]*models.Session, 0, len(lines)+1)
		for _, line := range lines {
			existing, err := models.ParseSession(line)
			if err != nil {
				continue
			}
			if existing.Token == session.Token {
				parsed = append(parsed, session)
				updated = true
			} else {
				parsed = append(parsed, existing)
			}
		}
		if !updated {
			parsed = append(parsed, session)
		}

		result := make([]string, 0, len(parsed))
		for _, s := range parsed {
			if s.ExpiryTime.After(now) {
				result = append(result, s.Serialize())
			}
		}
		return result, nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// DeleteByToken removes every session matching token (at most one in
// practice) and rewrites the store unconditionally.
func (r *TextFileRepository) DeleteByToken(ctx context.Context, token string) error {
	err := r.store.Update(FileName, func(lines []string) ([]string, error) {
		result := make([]string, 0, len(lines))
		for _, line := range lines {
			existing, err := models.ParseSession(line)
			if err != nil {
				continue
			}
			if existing.Token != token {
				result = append(result, line)
			}
		}
		return result, nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
