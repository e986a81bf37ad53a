package storage

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MemStore 纯内存实现，测试与一次性演示用
type MemStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]json.RawMessage)}
}

func (st *MemStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	st.mu.Lock()
	raw, ok := st.data[key]
	st.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.L().Warn("存储值反序列化失败，按空值处理", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (st *MemStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data[key] = raw
	return nil
}

func (st *MemStore) Delete(ctx context.Context, key string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.data, key)
	return nil
}
