package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/goteller/internal/common"
)

// getSimpleText, getPassword and getAmount are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getAmount     = GetAmount
)

// Register prompts for a username and password and attempts to create a new
// user. Failure reasons are deliberately not discriminated for the user.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		fmt.Println("Registration failed. Username might already exist.")
		return err
	}

	fmt.Println("Registration successful! You can now login.")
	return nil
}

// Login prompts for credentials and tries to authenticate. The password is
// securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		fmt.Println("Login failed. Please check your credentials.")
		return err
	}

	a.userName = username
	fmt.Println("Login successful!")
	return nil
}

// Logout closes the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			fmt.Println("You are not logged in.")
		} else {
			fmt.Println("Logout failed.")
		}
		return err
	}

	a.userName = ""
	fmt.Println("Logged out successfully.")
	return nil
}
