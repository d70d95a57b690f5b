//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/remedia-ai/remedia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ctx context.Context, t *testing.T) *CorpusStore {
	t.Helper()

	rc := testutil.NewRustFSContainer(ctx, t)
	t.Cleanup(func() { _ = rc.Terminate(ctx) })

	store, err := NewCorpusStore(ctx, CorpusStoreConfig{
		Endpoint:        rc.Endpoint(),
		Region:          "us-east-1",
		AccessKeyID:     "rustfsadmin",
		SecretAccessKey: "rustfsadmin",
		Bucket:          "remedia-corpus",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	require.NoError(t, store.EnsureBucket(ctx))

	return store
}

func TestCorpusStore_PutAndFetch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx, t)

	payload := []byte(`[{"remedy_name":"Belladonna","text":"Violent delirium."}]`)
	require.NoError(t, store.Put(ctx, "corpus/remedy_chunks.json", payload, "application/json"))

	data, err := store.Fetch(ctx, "corpus/remedy_chunks.json")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestCorpusStore_Put_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx, t)

	require.NoError(t, store.Put(ctx, "corpus/materia_medica.txt", []byte("first"), "text/plain"))
	require.NoError(t, store.Put(ctx, "corpus/materia_medica.txt", []byte("second"), "text/plain"))

	data, err := store.Fetch(ctx, "corpus/materia_medica.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestCorpusStore_Head(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx, t)

	payload := []byte("BELLADONNA\nViolent delirium, red face.")
	require.NoError(t, store.Put(ctx, "corpus/head.txt", payload, "text/plain"))

	size, err := store.Head(ctx, "corpus/head.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)

	_, err = store.Head(ctx, "corpus/missing.txt")
	assert.Error(t, err)
}

func TestCorpusStore_Fetch_Missing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx, t)

	_, err := store.Fetch(ctx, "corpus/does_not_exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist.json")
}

func TestCorpusStore_EnsureBucket_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(ctx, t)

	// Bucket already exists from setup
	require.NoError(t, store.EnsureBucket(ctx))
}
