package storage

import "context"

// 各mock处理函数使用的存储键，一个键对应一份完整集合
const (
	KeyUserProfile      = "user_profile"
	KeyUserCooperations = "user_cooperations"
	KeyShippingOrders   = "shipping_orders"
)

// Store 本地键值存储抽象
// 语义上始终整存整取：读出整份集合、在内存中修改、再整份写回，
// 不提供局部更新。并发调用同一键时为后写覆盖（last-write-wins），
// 这是在复刻宿主端单线程协作模型下的既有行为，不要在这里加锁"修复"
type Store interface {
	// Get 将键对应的值反序列化到out
	// 键不存在或存量数据无法反序列化时返回 found=false，由调用方落默认值
	Get(ctx context.Context, key string, out interface{}) (found bool, err error)

	// Set 整份写入键对应的值
	Set(ctx context.Context, key string, value interface{}) error

	// Delete 删除键（仅测试与重置场景使用）
	Delete(ctx context.Context, key string) error
}
