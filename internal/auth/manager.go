// Package auth orchestrates registration, login with lockout, logout and
// session validation for a single interactive terminal actor.
package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dmitrijs2005/goteller/internal/common"
	"github.com/dmitrijs2005/goteller/internal/config"
	"github.com/dmitrijs2005/goteller/internal/cryptox"
	"github.com/dmitrijs2005/goteller/internal/logging"
	"github.com/dmitrijs2005/goteller/internal/models"
	"github.com/dmitrijs2005/goteller/internal/repositories/sessions"
	"github.com/dmitrijs2005/goteller/internal/repositories/users"
)

// Manager tracks exactly one logged-in identity per instance. It models a
// single interactive terminal actor, not a multi-tenant session cache.
// ValidateSession is the exception: it checks externally presented tokens
// without touching the manager's own login state.
type Manager struct {
	users    users.Repository
	sessions sessions.Repository
	log      logging.Logger

	sessionDuration  time.Duration
	lockoutWindow    time.Duration
	maxLoginAttempts int

	currentUserID       int64
	currentSessionToken string

	// now is a test seam for the lockout and expiry clocks.
	now func() time.Time
}

// NewManager wires a Manager to its directories and policy settings.
func NewManager(userRepo users.Repository, sessionRepo sessions.Repository, cfg *config.Config, log logging.Logger) *Manager {
	return &Manager{
		users:            userRepo,
		sessions:         sessionRepo,
		log:              log.With("component", "auth"),
		sessionDuration:  cfg.SessionDuration,
		lockoutWindow:    cfg.LockoutWindow,
		maxLoginAttempts: cfg.MaxLoginAttempts,
		now:              time.Now,
	}
}

// Register creates a new user with the given credentials. Usernames are
// unique with exact, case-sensitive matching; a taken name yields
// common.ErrUserExists. No password-strength or username-format checks are
// performed.
func (m *Manager) Register(ctx context.Context, username string, password []byte) error {
	_, err := m.users.GetByUsername(ctx, username)
	if err == nil {
		return common.ErrUserExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	id, err := m.users.NextID(ctx)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: cryptox.HashPassword(string(password)),
	}
	if err := m.users.Save(ctx, user); err != nil {
		return err
	}

	m.log.Info(ctx, "user registered", "user_id", id)
	return nil
}

// Login authenticates the user and opens a session. All business failures
// (unknown user, locked account, wrong password) surface as the single
// common.ErrInvalidCredentials; only storage failures are reported as-is.
//
// A locked account rejects logins until the lockout window elapses; the
// next attempt after that auto-unlocks it and resets the failure counter.
// A wrong password counts towards the lockout threshold and is persisted.
func (m *Manager) Login(ctx context.Context, username string, password []byte) error {
	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidCredentials
		}
		return err
	}

	now := m.now()

	if user.Locked {
		if !user.LockExpired(now, m.lockoutWindow) {
			m.log.Warn(ctx, "login rejected for locked account", "user_id", user.ID)
			return common.ErrInvalidCredentials
		}
		user.Unlock()
	}

	if !cryptox.VerifyPassword(string(password), user.PasswordHash) {
		user.RecordFailure(now, m.maxLoginAttempts)
		if user.Locked {
			m.log.Warn(ctx, "account locked after repeated failures", "user_id", user.ID)
		}
		if err := m.users.Save(ctx, user); err != nil {
			return err
		}
		return common.ErrInvalidCredentials
	}

	user.FailedAttempts = 0
	if err := m.users.Save(ctx, user); err != nil {
		return err
	}

	token := m.generateSessionToken()
	session := models.NewSession(user.ID, token, m.sessionDuration, now)
	if err := m.sessions.Save(ctx, session); err != nil {
		return err
	}

	m.currentUserID = user.ID
	m.currentSessionToken = token
	m.log.Info(ctx, "user logged in", "user_id", user.ID)
	return nil
}

// Logout closes the current session. The manager always returns to the
// logged-out state, even if deleting the session record failed; the store
// error is reported to the caller.
func (m *Manager) Logout(ctx context.Context) error {
	if !m.IsLoggedIn() {
		return common.ErrNotLoggedIn
	}

	err := m.sessions.DeleteByToken(ctx, m.currentSessionToken)
	m.currentUserID = 0
	m.currentSessionToken = ""
	if err != nil {
		return err
	}
	m.log.Info(ctx, "user logged out")
	return nil
}

// IsLoggedIn reports whether the manager currently tracks an authenticated
// identity.
func (m *Manager) IsLoggedIn() bool {
	return m.currentSessionToken != "" && m.currentUserID > 0
}

// CurrentUserID returns the authenticated user's id, or 0 when nobody is
// logged in. Collaborators must treat 0 as "no authenticated user".
func (m *Manager) CurrentUserID() int64 {
	return m.currentUserID
}

// CurrentSessionToken returns the token of the current session, or the
// empty string when logged out.
func (m *Manager) CurrentSessionToken() string {
	return m.currentSessionToken
}

// ValidateSession checks an externally presented token and, when the
// session is live, renews it by a full duration from now. Expired sessions
// are never renewed or resurrected.
func (m *Manager) ValidateSession(ctx context.Context, token string) error {
	session, err := m.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		return err
	}

	now := m.now()
	if !session.Valid(now) {
		return common.ErrTokenExpired
	}

	session.Renew(m.sessionDuration, now)
	return m.sessions.Save(ctx, session)
}

// generateSessionToken combines the current time in milliseconds with a
// random integer, both hex-encoded. Uniqueness is probabilistic, not
// guaranteed; a collision is an accepted (if unlikely) risk.
func (m *Manager) generateSessionToken() string {
	return fmt.Sprintf("%016x%x", m.now().UnixMilli(), rand.Intn(1000000))
}
