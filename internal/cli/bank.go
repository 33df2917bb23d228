package cli

import (
	"context"
	"fmt"
	"os"
)

// OpenAccount prompts for an account name and an initial balance and
// creates the account for the logged-in user.
func (a *App) OpenAccount(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter account name", os.Stdout)
	if err != nil {
		return err
	}
	initial, err := getAmount(a.reader, "Enter initial balance", os.Stdout)
	if err != nil {
		fmt.Println("Invalid amount.")
		return err
	}

	account, err := a.bank.OpenAccount(ctx, a.auth.CurrentUserID(), name, initial)
	if err != nil {
		fmt.Println("Could not open the account.")
		return err
	}

	fmt.Printf("Account created: %s\n", account.AccountID)
	return nil
}

// Deposit prompts for an account id and an amount and credits the account.
func (a *App) Deposit(ctx context.Context) error {
	accountID, err := getSimpleText(a.reader, "Enter account ID", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Enter amount to deposit", os.Stdout)
	if err != nil {
		fmt.Println("Invalid amount.")
		return err
	}

	account, err := a.bank.Deposit(ctx, a.auth.CurrentUserID(), accountID, amount)
	if err != nil {
		fmt.Println("Deposit failed.")
		return err
	}

	fmt.Printf("New balance: $%.2f\n", account.Balance)
	return nil
}

// Withdraw prompts for an account id and an amount and debits the account.
func (a *App) Withdraw(ctx context.Context) error {
	accountID, err := getSimpleText(a.reader, "Enter account ID", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := getAmount(a.reader, "Enter amount to withdraw", os.Stdout)
	if err != nil {
		fmt.Println("Invalid amount.")
		return err
	}

	account, err := a.bank.Withdraw(ctx, a.auth.CurrentUserID(), accountID, amount)
	if err != nil {
		fmt.Println("Withdrawal failed. Check the amount and your balance.")
		return err
	}

	fmt.Printf("New balance: $%.2f\n", account.Balance)
	return nil
}

// Balance prompts for an account id and shows its balance.
func (a *App) Balance(ctx context.Context) error {
	accountID, err := getSimpleText(a.reader, "Enter account ID", os.Stdout)
	if err != nil {
		return err
	}

	balance, err := a.bank.Balance(ctx, a.auth.CurrentUserID(), accountID)
	if err != nil {
		fmt.Println("Could not read the balance.")
		return err
	}

	fmt.Printf("Balance: $%.2f\n", balance)
	return nil
}

// ListAccounts shows every account owned by the logged-in user.
func (a *App) ListAccounts(ctx context.Context) error {
	accounts, err := a.bank.ListByUser(ctx, a.auth.CurrentUserID())
	if err != nil {
		fmt.Println("Could not list accounts.")
		return err
	}

	if len(accounts) == 0 {
		fmt.Println("No accounts yet. Use 'open' to create one.")
		return nil
	}
	for _, account := range accounts {
		fmt.Printf("Account: %s | Name: %s | Balance: $%.2f\n",
			account.AccountID, account.Name, account.Balance)
	}
	return nil
}
