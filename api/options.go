package api

import "context"

// Options 一次请求的可选参数
// Query 中值为 nil 的项在拼接URL时会被丢弃
type Options struct {
	Query   map[string]interface{}
	Body    interface{}
	Headers map[string]string
}

// Handler mock处理函数：入参为原始请求参数，返回值原样透传给调用方
// 业务失败通过 model.Envelope{OK:false} 表达，error 只用于协议层失败
type Handler func(ctx context.Context, opts *Options) (interface{}, error)

// Registry mock注册表的查找面，由 mock 包实现
type Registry interface {
	Lookup(method, path string) (Handler, bool)
}
