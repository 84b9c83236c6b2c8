package repository

import (
	"auth-web-server/internal/util"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKV : часть redis.Cmdable, которая нужна репозиторию
type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// InvalidationRepository : общий для нескольких инстансов список отозванных токенов.
// Запись живет ttl, дольше refresh токен все равно не валиден.
type InvalidationRepository struct {
	client redisKV
	ttl    time.Duration
}

func NewInvalidationRepository(client redisKV, ttl time.Duration) *InvalidationRepository {
	return &InvalidationRepository{client: client, ttl: ttl}
}

func (r *InvalidationRepository) Add(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key(token), 1, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения отозванного токена в Redis", err)
	}
	return nil
}

func (r *InvalidationRepository) Contains(ctx context.Context, token string) (bool, error) {
	count, err := r.client.Exists(ctx, r.key(token)).Result()
	if err != nil {
		return false, util.LogError("ошибка проверки токена в Redis", err)
	}
	return count > 0, nil
}

func (r *InvalidationRepository) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "invalidated:" + hex.EncodeToString(sum[:])
}
