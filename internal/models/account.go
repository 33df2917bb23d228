package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/goteller/internal/common"
)

// Account is a ledger account owned by a single user.
type Account struct {
	UserID    int64
	AccountID string
	Name      string
	Balance   float64
}

// Deposit adds amount to the balance. Non-positive amounts are rejected.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}
	a.Balance += amount
	return nil
}

// Withdraw removes amount from the balance. Non-positive amounts and
// overdrafts are rejected, leaving the balance unchanged.
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}
	if amount > a.Balance {
		return common.ErrInsufficientFunds
	}
	a.Balance -= amount
	return nil
}

// Serialize renders the account as a single store line:
//
//	userId,accountId,name,balance
func (a *Account) Serialize() string {
	return fmt.Sprintf("%d,%s,%s,%s",
		a.UserID, a.AccountID, a.Name, strconv.FormatFloat(a.Balance, 'f', 2, 64))
}

// ParseAccount parses a store line produced by Serialize.
func ParseAccount(line string) (*Account, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: account line has %d fields", ErrMalformedRecord, len(parts))
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: account user id: %v", ErrMalformedRecord, err)
	}
	balance, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: balance: %v", ErrMalformedRecord, err)
	}

	return &Account{
		UserID:    userID,
		AccountID: parts[1],
		Name:      parts[2],
		Balance:   balance,
	}, nil
}
