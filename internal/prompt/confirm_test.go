package prompt

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y", input: "y\n", want: true},
		{name: "uppercase Y", input: "Y\n", want: true},
		{name: "y with spaces", input: "  y  \n", want: true},
		{name: "n", input: "n\n", want: false},
		{name: "yes is not accepted", input: "yes\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "eof", input: "", want: false},
		{name: "garbage", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got, err := Confirm(context.Background(), "Delete? [y/N] ", strings.NewReader(tt.input), out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete? [y/N] ", out.String())
		})
	}
}

func TestConfirm_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()

	got, err := Confirm(ctx, "Delete? ", r, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, got)
}

func TestReader(t *testing.T) {
	confirm := Reader(strings.NewReader("y\n"), io.Discard)
	ok, err := confirm(context.Background(), "? ")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTerminalConfirm_NotATerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, os.WriteFile(path, []byte("y\n"), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	out := &bytes.Buffer{}
	ok, err := TerminalConfirm(f, out)(context.Background(), "Delete? ")
	require.NoError(t, err)
	assert.False(t, ok, "a regular file is never a terminal")
	assert.Contains(t, out.String(), constants.MsgNotTerminal)
}

func TestTerminalConfirm_Terminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, os.WriteFile(path, []byte("Y\n"), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	out := &bytes.Buffer{}
	confirm := terminalConfirm(f, out, func(*os.File) bool { return true })
	ok, err := confirm(context.Background(), "Delete? ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Delete? ", out.String())
}
