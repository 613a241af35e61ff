package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newTestService(store *document.MemoryRepository) *Service {
	svc := NewService(store, logger.NewNop())
	svc.SetTimeProvider(fixedTime{t: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)})
	return svc
}

func TestAddAndLowStock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(document.NewMemoryRepository())

	shampoo, err := svc.Add(ctx, ItemInput{Name: "Shampoo", Category: "hair", CurrentQuantity: 5, IdealQuantity: 20, Price: 12, LowStockAlert: 5})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", shampoo.LastRestocked)

	_, err = svc.Add(ctx, ItemInput{Name: "Polish", Category: "nails", CurrentQuantity: 30, IdealQuantity: 30, Price: 8, LowStockAlert: 10})
	require.NoError(t, err)

	_, err = svc.Add(ctx, ItemInput{Name: "", Category: "nails"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Add(ctx, ItemInput{Name: "Gloves", Category: "misc", CurrentQuantity: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	low := svc.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "Shampoo", low[0].Name)

	assert.Len(t, svc.ByCategory("NAILS"), 1)
	assert.Len(t, svc.List(), 2)
}

func TestRestock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(document.NewMemoryRepository())

	item, err := svc.Add(ctx, ItemInput{Name: "Shampoo", Category: "hair", CurrentQuantity: 2, IdealQuantity: 20, LowStockAlert: 5})
	require.NoError(t, err)

	svc.SetTimeProvider(fixedTime{t: time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)})
	restocked, err := svc.Restock(ctx, item.ID, 18)
	require.NoError(t, err)
	assert.Equal(t, 20, restocked.CurrentQuantity)
	assert.Equal(t, "2025-05-10", restocked.LastRestocked)
	assert.Empty(t, svc.LowStock())

	_, err = svc.Restock(ctx, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Restock(ctx, "missing", 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateDeleteRestore(t *testing.T) {
	ctx := context.Background()
	store := document.NewMemoryRepository()
	svc := newTestService(store)

	item, err := svc.Add(ctx, ItemInput{Name: "Shampoo", Category: "hair", CurrentQuantity: 10, IdealQuantity: 20, LowStockAlert: 5})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, item.ID, ItemPatch{Supplier: ptr.Ptr("Acme"), LowStockAlert: ptr.Ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Supplier)
	assert.True(t, updated.IsLowStock())

	_, err = svc.Update(ctx, item.ID, ItemPatch{Price: ptr.Ptr(-3.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	restored := newTestService(store)
	require.NoError(t, restored.Restore(ctx))
	got, err := restored.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Supplier)

	require.NoError(t, svc.Delete(ctx, item.ID))
	assert.ErrorIs(t, svc.Delete(ctx, item.ID), ErrItemNotFound)
	_, err = svc.Get(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
