package errno

import "errors"

// 哨兵错误，调用方用 errors.Is 判断类别
var (
	// ErrMockNotFound mock模式下没有注册对应的路由
	ErrMockNotFound = errors.New("mock handler not found")
	// ErrRequestFailed 真实请求返回非2xx
	ErrRequestFailed = errors.New("request failed")
	// ErrStorageFailed 本地存储读写失败
	ErrStorageFailed = errors.New("storage failed")
	// ErrAmapRequest 高德接口调用失败（含重试耗尽）
	ErrAmapRequest = errors.New("amap request failed")
	// ErrNoRoute 路径规划未返回可用路线
	ErrNoRoute = errors.New("no route found")
	// ErrInvalidCoordinate 经纬度非法
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
