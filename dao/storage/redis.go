package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"freight_service/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore 将整份集合作为一个string键存入Redis
// 多端共享同一份mock数据时使用，键语义与FileStore完全一致
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (st *RedisStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := st.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.L().Warn("存储值反序列化失败，按空值处理", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (st *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return st.client.Set(ctx, key, raw, 0).Err()
}

func (st *RedisStore) Delete(ctx context.Context, key string) error {
	return st.client.Del(ctx, key).Err()
}

// Close 关闭底层连接池
func (st *RedisStore) Close() error {
	return st.client.Close()
}
