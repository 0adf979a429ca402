package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetWithExpiration sets a key with a TTL
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue returns a string value; a missing key yields "" without error
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetListWithExpiration replaces a list atomically and sets a TTL. An
// empty slice clears the key; RPUSH without values is a Redis error.
func SetListWithExpiration(ctx context.Context, key string, value []string, expiration time.Duration) error {
	if len(value) == 0 {
		return Rdb.Del(ctx, key).Err()
	}

	pipe := Rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.RPush(ctx, key, value)
	pipe.Expire(ctx, key, expiration)
	_, err := pipe.Exec(ctx)
	return err
}

// GetList returns all elements of a list
func GetList(ctx context.Context, key string) ([]string, error) {
	value, err := Rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// DeleteKey removes a key
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

// GetRdbClient returns the shared client
func GetRdbClient() *redis.Client {
	return Rdb
}
