package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("connection refused")
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

var apple = models.FoodItem{
	Name:         "apple",
	CaloriesKcal: 52,
	ProteinG:     0.3,
	FatG:         0.2,
	CarbsG:       14,
	Vitamins:     "Vitamin C",
	Minerals:     "Potassium",
}

func TestLookup(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	item := apple
	require.NoError(t, db.Create(&item).Error)
	svc := service.NewNutritionService(db, nil, time.Minute, zaptest.NewLogger(t))

	got, err := svc.Lookup(context.Background(), "apple")
	require.NoError(t, err)
	assert.Equal(t, apple, *got)

	_, err = svc.Lookup(context.Background(), "Apple")
	assert.ErrorIs(t, err, service.ErrFoodNotFound)
}

func TestLookupReadThroughCache(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	item := apple
	require.NoError(t, db.Create(&item).Error)
	cache := newMemoryCache()
	svc := service.NewNutritionService(db, cache, time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "apple")
	require.NoError(t, err)
	assert.Contains(t, cache.entries, "nutrition:apple")

	// served from cache once the row is gone
	require.NoError(t, db.Delete(&models.FoodItem{}, "name = ?", "apple").Error)
	got, err := svc.Lookup(ctx, "apple")
	require.NoError(t, err)
	assert.Equal(t, 52.0, got.CaloriesKcal)

	_, err = svc.Lookup(ctx, "durian")
	assert.ErrorIs(t, err, service.ErrFoodNotFound)
	assert.NotContains(t, cache.entries, "nutrition:durian")
}

func TestLookupSurvivesCacheOutage(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	item := apple
	require.NoError(t, db.Create(&item).Error)
	cache := newMemoryCache()
	cache.failGet = true
	svc := service.NewNutritionService(db, cache, time.Minute, zaptest.NewLogger(t))

	got, err := svc.Lookup(context.Background(), "apple")
	require.NoError(t, err)
	assert.Equal(t, "apple", got.Name)
}
