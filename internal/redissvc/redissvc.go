package redissvc

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisService wraps the shared Redis client used for event logs (rate-limit
// strikes, restock notices). A nil *RedisService is valid and drops events,
// so callers don't have to guard for the no-Redis deployment.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

// LogEvent appends a JSON-encoded event to the list stored at key.
func (a *RedisService) LogEvent(key string, event any) error {
	if a == nil || a.rdb == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return a.rdb.RPush(a.ctx, key, data).Err()
}

// Events returns the raw JSON entries logged under key.
func (a *RedisService) Events(key string) ([]string, error) {
	if a == nil || a.rdb == nil {
		return nil, nil
	}
	return a.rdb.LRange(a.ctx, key, 0, -1).Result()
}

// ClearEvents deletes the event list stored at key.
func (a *RedisService) ClearEvents(key string) error {
	if a == nil || a.rdb == nil {
		return nil
	}
	return a.rdb.Del(a.ctx, key).Err()
}
