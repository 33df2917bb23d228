package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/goteller/internal/common"
	"github.com/dmitrijs2005/goteller/internal/config"
	"github.com/stretchr/testify/require"
)

// scriptedInput feeds canned answers through the interactive input seams.
// Each queue is consumed front to back; an exhausted queue reports EOF.
type scriptedInput struct {
	texts     []string
	passwords []string
	amounts   []float64
}

func installScript(t *testing.T, s *scriptedInput) {
	t.Helper()
	origText, origPass, origAmount := getSimpleText, getPassword, getAmount
	t.Cleanup(func() {
		getSimpleText, getPassword, getAmount = origText, origPass, origAmount
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(s.texts) == 0 {
			return "", io.EOF
		}
		v := s.texts[0]
		s.texts = s.texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		if len(s.passwords) == 0 {
			return nil, io.EOF
		}
		v := s.passwords[0]
		s.passwords = s.passwords[1:]
		// handlers wipe the slice, so hand out a fresh copy every time
		return []byte(v), nil
	}
	getAmount = func(_ *bufio.Reader, _ string, _ io.Writer) (float64, error) {
		if len(s.amounts) == 0 {
			return 0, io.EOF
		}
		v := s.amounts[0]
		s.amounts = s.amounts[1:]
		return v, nil
	}
}

func newTestApp(t *testing.T, dataDir string) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = dataDir
	cfg.LogLevel = "disabled"
	return NewApp(cfg)
}

func TestApp_FullBankingFlow(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, t.TempDir())
	script := &scriptedInput{}
	installScript(t, script)

	script.texts = []string{"alice"}
	script.passwords = []string{"s3cret"}
	require.NoError(t, app.Register(ctx))

	script.texts = []string{"alice"}
	script.passwords = []string{"s3cret"}
	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "(alice)", app.status())

	script.texts = []string{"Savings"}
	script.amounts = []float64{100}
	require.NoError(t, app.OpenAccount(ctx))

	accounts, err := app.bank.ListByUser(ctx, app.auth.CurrentUserID())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	accountID := accounts[0].AccountID

	script.texts = []string{accountID}
	script.amounts = []float64{40}
	require.NoError(t, app.Deposit(ctx))

	script.texts = []string{accountID}
	script.amounts = []float64{60}
	require.NoError(t, app.Withdraw(ctx))

	script.texts = []string{accountID}
	require.NoError(t, app.Balance(ctx))

	balance, err := app.bank.Balance(ctx, app.auth.CurrentUserID(), accountID)
	require.NoError(t, err)
	require.InDelta(t, 80.0, balance, 0.001)

	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())
	require.Equal(t, "", app.status())
}

func TestApp_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, t.TempDir())
	script := &scriptedInput{}
	installScript(t, script)

	script.texts = []string{"bob"}
	script.passwords = []string{"pass1"}
	require.NoError(t, app.Register(ctx))

	script.texts = []string{"bob"}
	script.passwords = []string{"pass2"}
	err := app.Register(ctx)
	require.ErrorIs(t, err, common.ErrUserExists)
}

func TestApp_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, t.TempDir())
	script := &scriptedInput{}
	installScript(t, script)

	script.texts = []string{"carol"}
	script.passwords = []string{"right"}
	require.NoError(t, app.Register(ctx))

	script.texts = []string{"carol"}
	script.passwords = []string{"wrong"}
	err := app.Login(ctx)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.False(t, app.isLoggedIn())
}

func TestApp_WithdrawOverdraftLeavesBalance(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, t.TempDir())
	script := &scriptedInput{}
	installScript(t, script)

	script.texts = []string{"dave"}
	script.passwords = []string{"pw"}
	require.NoError(t, app.Register(ctx))
	script.texts = []string{"dave"}
	script.passwords = []string{"pw"}
	require.NoError(t, app.Login(ctx))

	script.texts = []string{"Checking"}
	script.amounts = []float64{25}
	require.NoError(t, app.OpenAccount(ctx))

	accounts, err := app.bank.ListByUser(ctx, app.auth.CurrentUserID())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	accountID := accounts[0].AccountID

	script.texts = []string{accountID}
	script.amounts = []float64{100}
	err = app.Withdraw(ctx)
	require.ErrorIs(t, err, common.ErrInsufficientFunds)

	balance, err := app.bank.Balance(ctx, app.auth.CurrentUserID(), accountID)
	require.NoError(t, err)
	require.InDelta(t, 25.0, balance, 0.001)
}

func TestApp_LogoutWhenNotLoggedIn(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, t.TempDir())

	err := app.Logout(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestApp_StatePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	script := &scriptedInput{}
	installScript(t, script)

	app := newTestApp(t, dir)
	script.texts = []string{"erin"}
	script.passwords = []string{"pw"}
	require.NoError(t, app.Register(ctx))
	script.texts = []string{"erin"}
	script.passwords = []string{"pw"}
	require.NoError(t, app.Login(ctx))
	script.texts = []string{"Savings"}
	script.amounts = []float64{500}
	require.NoError(t, app.OpenAccount(ctx))

	// a second process over the same data directory sees the same state
	restarted := newTestApp(t, dir)
	script.texts = []string{"erin"}
	script.passwords = []string{"pw"}
	require.NoError(t, restarted.Login(ctx))

	accounts, err := restarted.bank.ListByUser(ctx, restarted.auth.CurrentUserID())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, "Savings", accounts[0].Name)
	require.InDelta(t, 500.0, accounts[0].Balance, 0.001)
}
