package linestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_ReadMissingFileIsEmpty(t *testing.T) {
	s := New(t.TempDir())

	lines, err := s.ReadLines("users.csv")
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	want := []string{"1,alice,s:h,0,0,0", "2,bob,s:h,0,0,0"}
	require.NoError(t, s.WriteLines("users.csv", want))

	got, err := s.ReadLines("users.csv")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestStore_WriteOverwrites(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.WriteLines("users.csv", []string{"old"}))
	require.NoError(t, s.WriteLines("users.csv", []string{"new-1", "new-2"}))

	got, err := s.ReadLines("users.csv")
	require.NoError(t, err)
	require.Equal(t, []string{"new-1", "new-2"}, got)
}

func TestStore_WriteEmptyClearsFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.WriteLines("sessions.csv", []string{"tok,1,2,3"}))
	require.NoError(t, s.WriteLines("sessions.csv", nil))

	got, err := s.ReadLines("sessions.csv")
	require.NoError(t, err)
	require.Empty(t, got)

	data, err := os.ReadFile(filepath.Join(dir, "sessions.csv"))
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestStore_ReadSkipsEmptyLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.csv"), []byte("a\n\nb\r\n\n"), 0o600))

	s := New(dir)
	got, err := s.ReadLines("users.csv")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestStore_Update(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.WriteLines("users.csv", []string{"a", "b"}))

	err := s.Update("users.csv", func(lines []string) ([]string, error) {
		require.Equal(t, []string{"a", "b"}, lines)
		return append(lines, "c"), nil
	})
	require.NoError(t, err)

	got, err := s.ReadLines("users.csv")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestStore_UpdateErrorSkipsWrite(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.WriteLines("users.csv", []string{"a"}))

	boom := errors.New("boom")
	err := s.Update("users.csv", func(lines []string) ([]string, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.ReadLines("users.csv")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, got)
}

func TestStore_CreatesDirectoryOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := New(dir)

	require.NoError(t, s.WriteLines("users.csv", []string{"x"}))

	_, err := os.Stat(filepath.Join(dir, "users.csv"))
	require.NoError(t, err)
}
