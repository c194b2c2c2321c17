package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps profiles in Redis under the same keys the browser
// version of the planner used in local storage. Values are JSON.
type RedisStore struct {
	*kvStore
	client *redis.Client
}

// RedisOptions configures a Redis connection
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		kvStore: newKVStore(&redisBackend{client: client}, codec{marshal: json.Marshal, unmarshal: json.Unmarshal}, logger),
		client:  client,
	}
}

// DialRedisStore connects to Redis and checks the connection
func DialRedisStore(ctx context.Context, opts RedisOptions, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewRedisStore(client, logger), nil
}

// Client returns the underlying redis client
func (rs *RedisStore) Client() *redis.Client {
	return rs.client
}

type redisBackend struct {
	client *redis.Client
}

func (b *redisBackend) get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errNoKey
	}
	return data, err
}

func (b *redisBackend) set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

func (b *redisBackend) del(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

func (b *redisBackend) close() error {
	if b.client != nil {
		return b.client.Close()
	}
	return nil
}
