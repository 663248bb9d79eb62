//go:build !windows

package terminal_test

import (
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesolimbo/sixel/internal/terminal"
)

func openPty(t *testing.T) *terminal.Terminal {
	t.Helper()
	leader, follower, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		leader.Close()
		follower.Close()
	})
	return terminal.New(follower, follower)
}

func TestSetRawRestore(t *testing.T) {
	term := openPty(t)
	require.NoError(t, term.SetRaw())
	assert.NoError(t, term.Restore())
	// Restore when nothing was saved is a no-op.
	assert.NoError(t, term.Restore())
}

func TestSize(t *testing.T) {
	leader, follower, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer leader.Close()
	defer follower.Close()

	require.NoError(t, pty.Setsize(leader, &pty.Winsize{
		Rows: 24, Cols: 80, X: 800, Y: 480,
	}))

	term := terminal.New(follower, follower)
	sz, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, 80, sz.Cols)
	assert.Equal(t, 24, sz.Rows)
	assert.Equal(t, 800, sz.Width)
	assert.Equal(t, 480, sz.Height)

	w, h := term.CellSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
}

func TestCellSizeFallback(t *testing.T) {
	leader, follower, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer leader.Close()
	defer follower.Close()

	require.NoError(t, pty.Setsize(leader, &pty.Winsize{Rows: 24, Cols: 80}))

	term := terminal.New(follower, follower)
	w, h := term.CellSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
}

func TestOpenClose(t *testing.T) {
	term := openPty(t)
	require.NoError(t, term.Open())
	require.NoError(t, term.EnableMouse())
	assert.NoError(t, term.Close())
}
