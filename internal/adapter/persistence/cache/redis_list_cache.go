package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix     = "actividades:list"
	generationKey = keyPrefix + ":gen"

	DefaultListTTL = 30 * time.Second
)

// RedisAPI is the subset of redis.Cmdable the cache needs.
type RedisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisListCache stores List results under keys made of a generation
// counter and every filter dimension. Invalidate bumps the generation, so
// all older slots become unreachable and expire on their own.
type RedisListCache struct {
	rdb RedisAPI
	ttl time.Duration
}

var _ interfaces.IActividadListCache = (*RedisListCache)(nil)

func NewRedisListCache(rdb RedisAPI, ttl time.Duration) *RedisListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &RedisListCache{rdb: rdb, ttl: ttl}
}

func (c *RedisListCache) Lookup(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, bool, string, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		return nil, false, "", err
	}

	key := listKey(gen, filter)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, key, nil
	}
	if err != nil {
		return nil, false, "", err
	}

	var items []entities.Actividad
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt slot: report a miss and let Store overwrite it.
		return nil, false, key, nil
	}
	return items, true, key, nil
}

func (c *RedisListCache) Store(ctx context.Context, token string, items []entities.Actividad) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, token, raw, c.ttl).Err()
}

func (c *RedisListCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, generationKey).Err()
}

func listKey(gen string, f entities.ListFilter) string {
	return fmt.Sprintf("%s:g%s:f=%s|a=%s|c=%s", keyPrefix, gen,
		url.QueryEscape(f.Fecha), url.QueryEscape(f.AssignedTo), url.QueryEscape(f.CreatedBy))
}
