package stores

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, "missionMischiefUser")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "missionMischiefUser", []byte(`{"honor_score":100}`)))
	require.NoError(t, store.Put(ctx, "missionMischiefUser", []byte(`{"honor_score":90}`)))

	body, err := store.Get(ctx, "missionMischiefUser")
	require.NoError(t, err)
	assert.JSONEq(t, `{"honor_score":90}`, string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	require.NoError(t, store.Delete(ctx, "missionMischiefUser"))
	require.NoError(t, store.Delete(ctx, "missionMischiefUser"), "deleting twice is fine")
	_, err = store.Get(ctx, "missionMischiefUser")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreKeysStayInsideDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "../escape", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "__escape.json", entries[0].Name())
}

func TestFileStoreHonorsCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "k", []byte(`{}`)), context.Canceled)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
