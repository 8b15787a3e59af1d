package fsdir_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/content-browser/pkg/contentbrowser/source/fsdir"
)

func writeItem(t *testing.T, root, id string, content []byte) {
	t.Helper()

	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content"), content, 0o644))
}

func TestNewRequiresExistingDir(t *testing.T) {
	_, err := fsdir.New(fsdir.Config{Root: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)

	_, err = fsdir.New(fsdir.Config{})
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeItem(t, root, "beta", []byte("second"))
	writeItem(t, root, "alpha", []byte("first"))

	// A folder with no content file and a stray top-level file are ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644))

	src, err := fsdir.New(fsdir.Config{Root: root})
	require.NoError(t, err)

	var ids []string
	contents := map[string]string{}
	err = src.Walk(context.Background(), func(id string, raw []byte, readErr error) error {
		require.NoError(t, readErr)
		ids = append(ids, id)
		contents[id] = string(raw)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, ids)
	assert.Equal(t, "first", contents["alpha"])
	assert.Equal(t, "second", contents["beta"])
}

func TestWalkStopsOnCallbackError(t *testing.T) {
	root := t.TempDir()
	writeItem(t, root, "a", []byte("x"))
	writeItem(t, root, "b", []byte("y"))

	src, err := fsdir.New(fsdir.Config{Root: root})
	require.NoError(t, err)

	sentinel := errors.New("stop")
	seen := 0
	err = src.Walk(context.Background(), func(id string, raw []byte, readErr error) error {
		seen++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, seen)
}

func TestWalkCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeItem(t, root, "a", []byte("x"))

	src, err := fsdir.New(fsdir.Config{Root: root})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = src.Walk(ctx, func(id string, raw []byte, readErr error) error {
		t.Fatal("callback should not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
