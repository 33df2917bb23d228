// Package models defines the persisted record types: users, sessions and
// ledger accounts. Each type knows how to serialize itself into the
// one-record-per-line text format and how to parse itself back.
//
// The format is comma-delimited, so string fields must not contain commas.
// The password hash contains a colon but never a comma, which keeps naive
// splitting safe.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedRecord is returned when a persisted line cannot be parsed.
// Directories skip such lines instead of failing the whole read.
var ErrMalformedRecord = errors.New("malformed record")

// User is an identity with its credential and lockout state.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string // "<salt>:<digest>"
	FailedAttempts int
	Locked         bool
	LockTime       time.Time
}

// LockExpired reports whether the lockout window has elapsed since the
// account was locked.
func (u *User) LockExpired(now time.Time, window time.Duration) bool {
	return now.Sub(u.LockTime) >= window
}

// Unlock clears the lock and resets the failure counter.
func (u *User) Unlock() {
	u.Locked = false
	u.FailedAttempts = 0
}

// RecordFailure counts a failed login attempt and locks the account once
// the threshold is reached.
func (u *User) RecordFailure(now time.Time, threshold int) {
	u.FailedAttempts++
	if u.FailedAttempts >= threshold {
		u.Locked = true
		u.LockTime = now
	}
}

// Serialize renders the user as a single store line:
//
//	id,username,passwordHash,failedAttempts,locked(0|1),lockTimeEpochSeconds
func (u *User) Serialize() string {
	locked := 0
	if u.Locked {
		locked = 1
	}
	var lockTime int64
	if !u.LockTime.IsZero() {
		lockTime = u.LockTime.Unix()
	}
	return fmt.Sprintf("%d,%s,%s,%d,%d,%d",
		u.ID, u.Username, u.PasswordHash, u.FailedAttempts, locked, lockTime)
}

// ParseUser parses a store line produced by Serialize.
func ParseUser(line string) (*User, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 6 {
		return nil, fmt.Errorf("%w: user line has %d fields", ErrMalformedRecord, len(parts))
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: user id: %v", ErrMalformedRecord, err)
	}
	failed, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: failed attempts: %v", ErrMalformedRecord, err)
	}
	lockEpoch, err := strconv.ParseInt(parts[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lock time: %v", ErrMalformedRecord, err)
	}

	u := &User{
		ID:             id,
		Username:       parts[1],
		PasswordHash:   parts[2],
		FailedAttempts: failed,
		Locked:         parts[4] == "1",
	}
	if lockEpoch != 0 {
		u.LockTime = time.Unix(lockEpoch, 0)
	}
	return u, nil
}
