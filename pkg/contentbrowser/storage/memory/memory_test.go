package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/content-browser/pkg/contentbrowser"
	"github.com/tendant/content-browser/pkg/contentbrowser/storage/memory"
)

func TestPutGet(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	err := store.Put(ctx, "index.html", "text/html; charset=utf-8", []byte("<html></html>"))
	require.NoError(t, err)

	data, err := store.Get(ctx, "index.html")
	require.NoError(t, err)
	assert.Equal(t, []byte("<html></html>"), data)

	contentType, ok := store.ContentType("index.html")
	assert.True(t, ok)
	assert.Equal(t, "text/html; charset=utf-8", contentType)
}

func TestGetMissing(t *testing.T) {
	store := memory.New()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, contentbrowser.ErrObjectNotFound)
}

func TestPutCopiesData(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	data := []byte("original")
	require.NoError(t, store.Put(ctx, "k", "text/plain", data))
	data[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestDelete(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "text/plain", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, contentbrowser.ErrObjectNotFound)
}

func TestListSorted(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for _, key := range []string{"c.html", "a.html", "b.html"} {
		require.NoError(t, store.Put(ctx, key, "text/html", []byte("x")))
	}

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "b.html", "c.html"}, keys)
}
