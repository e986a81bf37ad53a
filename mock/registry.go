package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"freight_service/api"
	"freight_service/dao/storage"
)

// Route 注册表键，序列化形式固定为 "METHOD path"（单个空格分隔，path带前导斜杠）
type Route struct {
	Method string
	Path   string
}

// Key 返回 "METHOD path" 形式的字符串键
func (r Route) Key() string {
	return r.Method + " " + r.Path
}

// ParseKey 解析 "METHOD path" 字符串键，用于配置驱动的注册场景
func ParseKey(key string) (Route, error) {
	method, path, ok := strings.Cut(key, " ")
	if !ok || method == "" || !strings.HasPrefix(path, "/") {
		return Route{}, fmt.Errorf("invalid route key: %q", key)
	}
	return Route{Method: method, Path: path}, nil
}

// Registry 模拟后端：按路由键保存处理函数，数据落在本地键值存储里
type Registry struct {
	store    storage.Store
	handlers map[Route]api.Handler
}

// NewRegistry 创建注册表并注册全部内置路由
func NewRegistry(store storage.Store) *Registry {
	r := &Registry{
		store:    store,
		handlers: make(map[Route]api.Handler),
	}

	// 系统状态
	r.Register(http.MethodGet, "/status", r.handleStatus)

	// 货运数据：车源与货源
	r.Register(http.MethodGet, "/freight", r.handleFreight)

	// 用户
	r.Register(http.MethodGet, "/user/profile", r.handleGetProfile)
	r.Register(http.MethodPost, "/user/wechat/bind", r.handleBindWechat)
	r.Register(http.MethodPost, "/user/verify", r.handleVerify)
	r.Register(http.MethodPost, "/user/membership/purchase", r.handlePurchaseMembership)
	r.Register(http.MethodGet, "/user/cooperations", r.handleCooperations)

	// 运单
	r.Register(http.MethodPost, "/shipping/orders", r.handleSubmitOrder)
	r.Register(http.MethodPost, "/shipping/orders/pay", r.handlePayOrder)
	r.Register(http.MethodPost, "/shipping/orders/cancel", r.handleCancelOrder)
	r.Register(http.MethodGet, "/shipping/orders", r.handleListOrders)

	// AI运价推荐
	r.Register(http.MethodPost, "/pricing/quote", r.handleQuote)

	return r
}

// Register 注册一个处理函数，重复注册同一路由时后注册者生效
func (r *Registry) Register(method, path string, h api.Handler) {
	r.handlers[Route{Method: method, Path: path}] = h
}

// Lookup 实现 api.Registry
func (r *Registry) Lookup(method, path string) (api.Handler, bool) {
	h, ok := r.handlers[Route{Method: method, Path: path}]
	return h, ok
}

// Routes 返回全部已注册路由（按键排序，便于确定性挂载）
func (r *Registry) Routes() []Route {
	routes := make([]Route, 0, len(r.handlers))
	for rt := range r.handlers {
		routes = append(routes, rt)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Key() < routes[j].Key() })
	return routes
}

func (r *Registry) handleStatus(ctx context.Context, opts *api.Options) (interface{}, error) {
	return map[string]interface{}{
		"ok":      true,
		"ts":      time.Now().UnixMilli(),
		"message": "ok",
	}, nil
}

// decodeBody 通过JSON中转把调用方传入的任意body结构解码到目标类型
func decodeBody(body interface{}, out interface{}) error {
	if body == nil {
		return nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// queryFloat 读取数值型query参数，缺失、无法解析或为0时返回默认值
// （与前端 Number(v) || def 的取值习惯保持一致）
func queryFloat(opts *api.Options, key string, def float64) float64 {
	if opts == nil || opts.Query == nil {
		return def
	}
	v, ok := opts.Query[key]
	if !ok || v == nil {
		return def
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}
	if f == 0 {
		return def
	}
	return f
}

func queryInt(opts *api.Options, key string, def int) int {
	return int(queryFloat(opts, key, float64(def)))
}

func queryInt64(opts *api.Options, key string, def int64) int64 {
	return int64(queryFloat(opts, key, float64(def)))
}

func queryString(opts *api.Options, key string) string {
	if opts == nil || opts.Query == nil {
		return ""
	}
	v, ok := opts.Query[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
