package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Session is proof of an authenticated interaction, exchanged for continued
// access without re-presenting credentials.
type Session struct {
	Token        string
	UserID       int64
	CreationTime time.Time
	ExpiryTime   time.Time
}

// NewSession creates a session for the given user, valid for duration from now.
func NewSession(userID int64, token string, duration time.Duration, now time.Time) *Session {
	return &Session{
		Token:        token,
		UserID:       userID,
		CreationTime: now,
		ExpiryTime:   now.Add(duration),
	}
}

// Valid reports whether the session has not yet expired.
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiryTime)
}

// Renew extends the expiry by a full duration from now. The creation time
// is immutable.
func (s *Session) Renew(duration time.Duration, now time.Time) {
	s.ExpiryTime = now.Add(duration)
}

// Serialize renders the session as a single store line:
//
//	token,userId,creationTimeEpochSeconds,expiryTimeEpochSeconds
func (s *Session) Serialize() string {
	return fmt.Sprintf("%s,%d,%d,%d",
		s.Token, s.UserID, s.CreationTime.Unix(), s.ExpiryTime.Unix())
}

// ParseSession parses a store line produced by Serialize.
func ParseSession(line string) (*Session, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: session line has %d fields", ErrMalformedRecord, len(parts))
	}

	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: session user id: %v", ErrMalformedRecord, err)
	}
	created, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: creation time: %v", ErrMalformedRecord, err)
	}
	expires, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: expiry time: %v", ErrMalformedRecord, err)
	}

	return &Session{
		Token:        parts[0],
		UserID:       userID,
		CreationTime: time.Unix(created, 0),
		ExpiryTime:   time.Unix(expires, 0),
	}, nil
}
