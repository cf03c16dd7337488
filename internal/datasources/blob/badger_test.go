package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadger_RoundTrip(t *testing.T) {
	storage, err := NewBadgerInMemory(DefaultSlot)
	require.NoError(t, err)
	defer storage.Close()

	ctx := context.Background()

	// Unwritten slot reads as absent, not as an error.
	_, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Store(ctx, []byte(`[{"id":1}]`)))

	data, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":1}]`), data)

	// Writes overwrite the slot wholesale.
	require.NoError(t, storage.Store(ctx, []byte(`[]`)))

	data, found, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), data)
}

func TestMemory_RoundTrip(t *testing.T) {
	storage := NewMemory()
	ctx := context.Background()

	_, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Store(ctx, []byte("payload")))

	data, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), data)
}
