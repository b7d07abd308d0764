package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ok, err := store.Exists(ctx, "clients/clients.json")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = store.Read(ctx, "clients/clients.json")
	require.ErrorIs(t, err, ErrNotFound)

	body := []byte(`[{"id":"client_1"}]`)
	require.NoError(t, store.Write(ctx, "clients/clients.json", body, "application/json"))

	ok, err = store.Exists(ctx, "clients/clients.json")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := store.Read(ctx, "clients/clients.json")
	require.NoError(t, err)
	require.Equal(t, body, got)
}

func TestMemoryStoreReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, "k", []byte("abc"), "text/plain"))

	got, err := store.Read(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := store.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}
