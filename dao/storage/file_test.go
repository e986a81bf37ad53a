package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"freight_service/dao/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	st, err := storage.NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	// 不存在的键
	var out []string
	found, err := st.Get(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Set(ctx, "list", []string{"a", "b"}))
	found, err = st.Get(ctx, "list", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out)

	// 重新打开后数据仍在
	st2, err := storage.NewFileStore(path)
	require.NoError(t, err)
	out = nil
	found, err = st2.Get(ctx, "list", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	st, err := storage.NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "k", 42))
	require.NoError(t, st.Delete(ctx, "k"))

	var v int
	found, err := st.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)

	// 删除也持久化
	st2, err := storage.NewFileStore(path)
	require.NoError(t, err)
	found, err = st2.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreTypeMismatchTreatedAsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	st, err := storage.NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	// 写对象、读数组：按不存在处理而不是报错
	require.NoError(t, st.Set(ctx, "orders", map[string]int{"a": 1}))
	var out []string
	found, err := st.Get(ctx, "orders", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	st, err := storage.NewFileStore(path)
	require.NoError(t, err)

	var v int
	found, err := st.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "storage.json")
	st, err := storage.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, st.Set(context.Background(), "k", "v"))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestMemStoreRoundTrip(t *testing.T) {
	st := storage.NewMemStore()
	ctx := context.Background()

	var out map[string]string
	found, err := st.Get(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Set(ctx, "m", map[string]string{"a": "1"}))
	found, err = st.Get(ctx, "m", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]string{"a": "1"}, out)

	require.NoError(t, st.Delete(ctx, "m"))
	found, err = st.Get(ctx, "m", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
