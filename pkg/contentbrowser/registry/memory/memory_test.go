package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/content-browser/pkg/contentbrowser"
	"github.com/tendant/content-browser/pkg/contentbrowser/registry/memory"
)

func newLink(title, path string) *contentbrowser.Link {
	return &contentbrowser.Link{
		ID:      uuid.New(),
		Title:   title,
		Path:    path,
		AddedAt: time.Now().UTC(),
	}
}

func TestAddAndList(t *testing.T) {
	reg := memory.New()
	ctx := context.Background()

	require.NoError(t, reg.Add(ctx, newLink("First", "/a.html")))
	require.NoError(t, reg.Add(ctx, newLink("Second", "/b.html")))

	links, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "First", links[0].Title)
	assert.Equal(t, "Second", links[1].Title)
}

func TestFindByPath(t *testing.T) {
	reg := memory.New()
	ctx := context.Background()

	link := newLink("Report", "/report.html")
	require.NoError(t, reg.Add(ctx, link))

	found, err := reg.FindByPath(ctx, "/report.html")
	require.NoError(t, err)
	assert.Equal(t, link.ID, found.ID)

	_, err = reg.FindByPath(ctx, "/missing.html")
	assert.ErrorIs(t, err, contentbrowser.ErrLinkNotFound)
}

func TestRemove(t *testing.T) {
	reg := memory.New()
	ctx := context.Background()

	require.NoError(t, reg.Add(ctx, newLink("Alpha Report", "/a.html")))
	require.NoError(t, reg.Add(ctx, newLink("Beta", "/b-report.html")))
	require.NoError(t, reg.Add(ctx, newLink("Gamma", "/c.html")))

	// Matching is case-insensitive over both title and path.
	removed, err := reg.Remove(ctx, "REPORT")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	links, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Gamma", links[0].Title)
}

func TestRemoveNoMatch(t *testing.T) {
	reg := memory.New()

	removed, err := reg.Remove(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestListCopies(t *testing.T) {
	reg := memory.New()
	ctx := context.Background()

	require.NoError(t, reg.Add(ctx, newLink("Original", "/a.html")))

	links, err := reg.List(ctx)
	require.NoError(t, err)
	links[0].Title = "Mutated"

	again, err := reg.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original", again[0].Title)
}
