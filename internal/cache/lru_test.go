package cache

import (
	"atelier/internal/database/mocks"
	"atelier/internal/model"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func snap(code string) *model.Snapshot {
	return &model.Snapshot{TrackingCode: code}
}

func TestLRUCache_SetAndGet(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "CM-1", snap("CM-1"))
	val, found := cache.Get(ctx, "CM-1")
	assertions.True(found)
	assertions.Equal("CM-1", val.TrackingCode)

	cache.Set(ctx, "AW-1", snap("AW-1"))
	val, found = cache.Get(ctx, "AW-1")
	assertions.True(found)
	assertions.Equal("AW-1", val.TrackingCode)

	_, found = cache.Get(ctx, "CM-1")
	assertions.True(found)
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	cache.Set(ctx, "CM-1", snap("CM-1"))
	cache.Set(ctx, "CM-2", snap("CM-2"))
	// CM-1 самый старый и должен быть вытеснен
	cache.Set(ctx, "CM-3", snap("CM-3"))

	_, found := cache.Get(ctx, "CM-1")
	assert.False(t, found, "CM-1 should be evicted")

	_, found = cache.Get(ctx, "CM-2")
	assert.True(t, found)
	_, found = cache.Get(ctx, "CM-3")
	assert.True(t, found)
}

func TestLRUCache_UsageUpdatesOrder(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	cache.Set(ctx, "CM-1", snap("CM-1"))
	cache.Set(ctx, "CM-2", snap("CM-2"))

	// Чтение делает CM-1 самым новым
	cache.Get(ctx, "CM-1")
	cache.Set(ctx, "CM-3", snap("CM-3"))

	_, found := cache.Get(ctx, "CM-2")
	assert.False(t, found, "CM-2 should be evicted")
	_, found = cache.Get(ctx, "CM-1")
	assert.True(t, found)
}

func TestLRUCache_UpdateValue(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	cache.Set(ctx, "CM-1", &model.Snapshot{TrackingCode: "CM-1", Status: "pending"})
	cache.Set(ctx, "CM-1", &model.Snapshot{TrackingCode: "CM-1", Status: "quoted"})

	val, found := cache.Get(ctx, "CM-1")
	assert.True(t, found)
	assert.Equal(t, "quoted", val.Status)
}

func TestLRUCache_Delete(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	cache.Set(ctx, "AW-1", snap("AW-1"))
	cache.Delete(ctx, "AW-1")
	cache.Delete(ctx, "AW-404")

	_, found := cache.Get(ctx, "AW-1")
	assert.False(t, found)
}

func TestLRUCache_SetIfUnchanged(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	v := cache.Version(ctx, "CM-1")
	assert.True(t, cache.SetIfUnchanged(ctx, "CM-1", &model.Snapshot{TrackingCode: "CM-1", Status: "pending"}, v))

	// Снимок прочитан до перехода, Delete пришел раньше заполнения.
	v = cache.Version(ctx, "CM-1")
	cache.Delete(ctx, "CM-1")
	assert.False(t, cache.SetIfUnchanged(ctx, "CM-1", &model.Snapshot{TrackingCode: "CM-1", Status: "pending"}, v))
	_, found := cache.Get(ctx, "CM-1")
	assert.False(t, found)

	// Удаление другого ключа не мешает.
	v = cache.Version(ctx, "CM-1")
	cache.Delete(ctx, "CM-2")
	assert.True(t, cache.SetIfUnchanged(ctx, "CM-1", &model.Snapshot{TrackingCode: "CM-1", Status: "quoted"}, v))
	val, found := cache.Get(ctx, "CM-1")
	assert.True(t, found)
	assert.Equal(t, "quoted", val.Status)
}

func TestLRUCache_GenerationsResetInvalidatesVersions(t *testing.T) {
	cache := NewLRUCache(1)
	ctx := context.Background()

	v := cache.Version(ctx, "CM-1")
	for i := 0; i <= minTracked; i++ {
		cache.Delete(ctx, fmt.Sprintf("AW-%d", i))
	}

	assert.False(t, cache.SetIfUnchanged(ctx, "CM-1", snap("CM-1"), v))
	assert.True(t, cache.SetIfUnchanged(ctx, "CM-1", snap("CM-1"), cache.Version(ctx, "CM-1")))
}

func TestLRUCache_ZeroCapacity(t *testing.T) {
	cache := NewLRUCache(0)
	ctx := context.Background()

	cache.Set(ctx, "CM-1", snap("CM-1"))
	_, found := cache.Get(ctx, "CM-1")
	assert.False(t, found)
}

func TestWarmUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorage(ctrl)
	ctx := context.Background()

	storage.EXPECT().ActiveCommissions(ctx, 10).Return([]model.Commission{
		{TrackingCode: "CM-AAAA1111", Status: model.CommissionPending, CalculatedPrice: 8500},
	}, nil)
	storage.EXPECT().ActiveOrders(ctx, 10).Return([]model.StoreOrder{
		{TrackingCode: "AW-BBBB2222", Phase: model.PhaseAdvancePaid, TotalAmount: 3000},
	}, nil)

	cache := NewLRUCache(10)
	assert.NoError(t, WarmUp(ctx, storage, cache, 10))

	c, found := cache.Get(ctx, "CM-AAAA1111")
	assert.True(t, found)
	assert.Equal(t, "pending", c.Status)
	assert.Equal(t, int64(8500), *c.TotalAmount)

	o, found := cache.Get(ctx, "AW-BBBB2222")
	assert.True(t, found)
	assert.Equal(t, "processing", o.Status)
}

func TestWarmUp_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().ActiveCommissions(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	err := WarmUp(context.Background(), storage, NewLRUCache(10), 10)
	assert.Error(t, err)
}
