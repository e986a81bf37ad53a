package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore 单文件JSON存储，对应小程序端的本地缓存
// 文件内容为 key -> 原始JSON 的映射，每次Set写回整个文件
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFileStore 打开（必要时创建）存储文件
func NewFileStore(path string) (*FileStore, error) {
	st := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}
	if err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *FileStore) load() error {
	raw, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("读取存储文件失败: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &st.data); err != nil {
		// 文件整体损坏时从空库开始，与端上缓存被清理后的表现一致
		zap.L().Warn("存储文件内容损坏，已忽略", zap.String("path", st.path), zap.Error(err))
		st.data = make(map[string]json.RawMessage)
	}
	return nil
}

func (st *FileStore) flush() error {
	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(st.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, raw, 0644)
}

func (st *FileStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	st.mu.Lock()
	raw, ok := st.data[key]
	st.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// 存量数据与期望结构不符（比如期望数组读到了对象）按不存在处理
		zap.L().Warn("存储值反序列化失败，按空值处理", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (st *FileStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.data[key] = raw
	return st.flush()
}

func (st *FileStore) Delete(ctx context.Context, key string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.data, key)
	return st.flush()
}
