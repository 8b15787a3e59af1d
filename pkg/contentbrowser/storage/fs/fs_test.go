package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/content-browser/pkg/contentbrowser"
	"github.com/tendant/content-browser/pkg/contentbrowser/storage/fs"
)

func newTestStore(t *testing.T) *fs.Store {
	t.Helper()

	store, err := fs.New(fs.Config{BaseDir: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestNewRequiresBaseDir(t *testing.T) {
	_, err := fs.New(fs.Config{})
	assert.Error(t, err)
}

func TestPutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Put(ctx, "index.html", "text/html", []byte("<html></html>"))
	require.NoError(t, err)

	data, err := store.Get(ctx, "index.html")
	require.NoError(t, err)
	assert.Equal(t, []byte("<html></html>"), data)

	// The object lands as a real file under the base directory.
	onDisk, err := os.ReadFile(filepath.Join(store.BaseDir(), "index.html"))
	require.NoError(t, err)
	assert.Equal(t, []byte("<html></html>"), onDisk)
}

func TestPutNestedKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "assets/css/styles.css", "text/css", []byte("body{}")))

	data, err := store.Get(ctx, "assets/css/styles.css")
	require.NoError(t, err)
	assert.Equal(t, []byte("body{}"), data)
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing.html")
	assert.ErrorIs(t, err, contentbrowser.ErrObjectNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "page.html", "text/html", []byte("x")))
	require.NoError(t, store.Delete(ctx, "page.html"))

	_, err := store.Get(ctx, "page.html")
	assert.ErrorIs(t, err, contentbrowser.ErrObjectNotFound)
}

func TestList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "index.html", "text/html", []byte("x")))
	require.NoError(t, store.Put(ctx, "items/a.html", "text/html", []byte("x")))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.html", "items/a.html"}, keys)
}
