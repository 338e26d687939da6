package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NutritionCache is an optional read-through cache in front of food_items.
type NutritionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisNutritionCache stores serialized FoodItems in Redis.
type RedisNutritionCache struct {
	client *redis.Client
}

func NewRedisNutritionCache(client *redis.Client) *RedisNutritionCache {
	return &RedisNutritionCache{client: client}
}

func (c *RedisNutritionCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisNutritionCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

type NutritionService struct {
	db     *gorm.DB
	cache  NutritionCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewNutritionService creates a lookup service. cache may be nil.
func NewNutritionService(db *gorm.DB, cache NutritionCache, ttl time.Duration, logger *zap.Logger) *NutritionService {
	return &NutritionService{db: db, cache: cache, ttl: ttl, logger: logger}
}

// Lookup finds a food by exact name. Callers pass the lowercase label.
// Cache failures are logged and never fail the lookup; misses are not cached.
func (s *NutritionService) Lookup(ctx context.Context, name string) (*models.FoodItem, error) {
	key := "nutrition:" + name

	if s.cache != nil {
		data, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("nutrition cache read failed", zap.String("food", name), zap.Error(err))
		case ok:
			var item models.FoodItem
			if err := json.Unmarshal(data, &item); err == nil {
				return &item, nil
			}
			s.logger.Warn("discarding malformed cache entry", zap.String("food", name))
		}
	}

	var item models.FoodItem
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup food %q: %w", name, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(&item); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				s.logger.Warn("nutrition cache write failed", zap.String("food", name), zap.Error(err))
			}
		}
	}
	return &item, nil
}
