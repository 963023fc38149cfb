package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avdeevra/equiprent/config"
	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client       *redis.Client
	equipmentTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, equipmentTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		equipmentTTL: equipmentTTL,
	}
}

func (c *RedisCache) GetEquipment(ctx context.Context) ([]domain.Equipment, error) {
	data, err := c.client.Get(ctx, equipmentKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var equipment []domain.Equipment
	if err := json.Unmarshal(data, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (c *RedisCache) SetEquipment(ctx context.Context, equipment []domain.Equipment) error {
	payload, err := json.Marshal(equipment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, equipmentKey(), payload, c.equipmentTTL).Err()
}

func (c *RedisCache) InvalidateEquipment(ctx context.Context) error {
	return c.client.Del(ctx, equipmentKey()).Err()
}

// AcquireAdmissionLock takes a short-lived per-equipment lock so concurrent
// booking requests for the same equipment are admitted one at a time.
func (c *RedisCache) AcquireAdmissionLock(ctx context.Context, equipmentID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, admissionLockKey(equipmentID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseAdmissionLock(ctx context.Context, equipmentID int64) error {
	return c.client.Del(ctx, admissionLockKey(equipmentID)).Err()
}

func equipmentKey() string {
	return "cache:equipment"
}

func admissionLockKey(equipmentID int64) string {
	return fmt.Sprintf("lock:equipment:%d", equipmentID)
}
