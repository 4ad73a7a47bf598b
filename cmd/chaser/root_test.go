package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/observability"
)

// useSimulationScreen points run at an in-memory screen for the test's duration
func useSimulationScreen(t *testing.T) {
	t.Helper()
	orig := newScreen
	newScreen = func() (tcell.Screen, error) {
		s := tcell.NewSimulationScreen("UTF-8")
		return s, nil
	}
	t.Cleanup(func() { newScreen = orig })
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chaser "+Version)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, context.Background(), "--version")
	require.NoError(t, err)
	assert.Equal(t, "chaser "+Version+"\n", out)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, context.Background(), "--config", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chaser.yaml"), []byte("player:\n  radius: 0\n"), 0o644))

	_, err := execute(t, context.Background(), "--no-audio")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestInvalidBindingFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chaser.yaml"), []byte("input:\n  bindings:\n    sideways: [\"x\"]\n"), 0o644))

	observability.ResetForTest()
	defer observability.ResetForTest()

	_, err := execute(t, context.Background(), "--no-audio")
	assert.Error(t, err)
}

func TestRunUntilCanceled(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	useSimulationScreen(t)

	observability.ResetForTest()
	defer observability.ResetForTest()

	logPath := filepath.Join(dir, "chaser.log")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := execute(t, ctx, "--no-audio", "--debug-colliders", "--log-file", logPath, "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting chaser")
	assert.Contains(t, string(data), "session ended")
}
