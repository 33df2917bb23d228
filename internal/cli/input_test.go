package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsNewline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("alice\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "alice", got)
	require.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no-newline"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EmptyInputReturnsError(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Prompt", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("hunter2"), pw)
	require.Contains(t, out.String(), "Enter password")
}

func TestGetPassword_PropagatesError(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	boom := errors.New("no tty")
	readPassword = func(fd int) ([]byte, error) { return nil, boom }

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.ErrorIs(t, err, boom)
}

func TestGetAmount_ParsesFloat(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("12.50\n"))
	var out bytes.Buffer

	got, err := GetAmount(reader, "Enter amount", &out)
	require.NoError(t, err)
	require.InDelta(t, 12.50, got, 0.001)
}

func TestGetAmount_RejectsGarbage(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("a lot\n"))
	var out bytes.Buffer

	_, err := GetAmount(reader, "Enter amount", &out)
	require.Error(t, err)
}
