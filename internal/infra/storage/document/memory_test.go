package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryApplyAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	batch := NewBatch()
	require.NoError(t, batch.Put("slot", "b", sample{Name: "b"}))
	require.NoError(t, batch.Put("slot", "a", sample{Name: "a"}))
	require.NoError(t, batch.Put("service", "s1", sample{Name: "cut"}))
	require.NoError(t, repo.Apply(ctx, batch))

	docs, err := repo.Load(ctx, "slot")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, 1, repo.Count("service"))

	del := NewBatch()
	del.Delete("slot", "a")
	require.NoError(t, repo.Apply(ctx, del))

	docs, err = repo.Load(ctx, "slot")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)
}

func TestMemoryRepositoryEmptyKind(t *testing.T) {
	docs, err := NewMemoryRepository().Load(context.Background(), "inventory")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryRepositoryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRepository()
	batch := NewBatch()
	require.NoError(t, batch.Put("slot", "a", sample{}))

	assert.ErrorIs(t, repo.Apply(ctx, batch), context.Canceled)
	assert.Equal(t, 0, repo.Count("slot"))
}
