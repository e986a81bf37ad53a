package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"freight_service/errno"

	"go.uber.org/zap"
)

// Client 统一的请求入口
// mock开启时请求由注册表内的处理函数就地处理，否则发往真实后端
// mock开关有两级：构造时传入的默认值（来自配置文件），
// 以及运行时覆盖值，覆盖值一旦设置始终优先
type Client struct {
	host     string
	useMock  bool // 默认值
	registry Registry
	hc       *http.Client

	mu       sync.RWMutex
	override *bool // 运行时覆盖，nil表示未设置
}

// New 创建客户端，host为真实后端地址，useMock为mock开关默认值
func New(host string, useMock bool, registry Registry) *Client {
	return &Client{
		host:     host,
		useMock:  useMock,
		registry: registry,
		hc:       &http.Client{Timeout: 10 * time.Second},
	}
}

// SetMockOverride 设置运行时mock开关，优先于默认值
func (c *Client) SetMockOverride(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = &v
}

// ClearMockOverride 清除运行时覆盖，恢复默认值
func (c *Client) ClearMockOverride() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = nil
}

// MockEnabled 当前是否走mock
func (c *Client) MockEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override != nil {
		return *c.override
	}
	return c.useMock
}

// Do 执行一次请求
// mock模式下按 "METHOD path" 查找处理函数并原样返回其结果；
// 否则发起网络请求，2xx返回解码后的响应体，其余状态码报错
func (c *Client) Do(ctx context.Context, method, path string, opts *Options) (interface{}, error) {
	if opts == nil {
		opts = &Options{}
	}

	if c.MockEnabled() {
		key := method + " " + path
		handler, ok := c.registry.Lookup(method, path)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errno.ErrMockNotFound, key)
		}
		return handler(ctx, opts)
	}

	rawURL := BuildURL(c.host, path, opts.Query)

	var body io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(raw) == 0 {
			return nil, nil
		}
		var out interface{}
		if err := json.Unmarshal(raw, &out); err != nil {
			// 非JSON响应体按原文返回
			return string(raw), nil
		}
		return out, nil
	}

	zap.L().Warn("后端返回非2xx状态码",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))
	return nil, fmt.Errorf("%w: %s %s: status %d, body %s",
		errno.ErrRequestFailed, method, path, resp.StatusCode, raw)
}

// DoInto 执行请求并把结果解码到out，mock与真实两种来源表现一致
func (c *Client) DoInto(ctx context.Context, method, path string, opts *Options, out interface{}) error {
	result, err := c.Do(ctx, method, path, opts)
	if err != nil {
		return err
	}
	if result == nil || out == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) Get(ctx context.Context, path string, opts *Options) (interface{}, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

func (c *Client) Post(ctx context.Context, path string, opts *Options) (interface{}, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

func (c *Client) Put(ctx context.Context, path string, opts *Options) (interface{}, error) {
	return c.Do(ctx, http.MethodPut, path, opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts *Options) (interface{}, error) {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

// BuildURL 拼接完整URL：host去掉一个尾部斜杠，path去掉一个头部斜杠，
// query中nil值跳过，其余值转成字符串后做标准URL编码
func BuildURL(host, path string, query map[string]interface{}) string {
	u := strings.TrimSuffix(host, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) == 0 {
		return u
	}
	vals := url.Values{}
	for k, v := range query {
		if v == nil {
			continue
		}
		vals.Set(k, queryValue(v))
	}
	if enc := vals.Encode(); enc != "" {
		return u + "?" + enc
	}
	return u
}

func queryValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
