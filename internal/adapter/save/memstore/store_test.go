package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horsekeep/internal/app/ports"
)

func TestStore_GetMissingKey(t *testing.T) {
	store := New()
	_, err := store.Get(context.Background(), "slot")
	assert.ErrorIs(t, err, ports.ErrNoSave)
}

func TestStore_PutOverwrites(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "slot", "first"))
	require.NoError(t, store.Put(ctx, "slot", "second"))

	got, err := store.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
