package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freight_service/config"
	"freight_service/errno"

	"go.uber.org/zap"
)

// Client 高德开放平台Web服务客户端
// 统一追加key、固定次数重试（固定间隔）、校验响应里的 status=="1" 约定
type Client struct {
	key         string
	baseURL     string
	hc          *http.Client
	maxAttempts int
	retryDelay  time.Duration
}

// New 按配置创建客户端，零值字段落默认值
func New(cfg *config.AmapConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://restapi.amap.com"
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	retryDelay := time.Duration(cfg.RetryDelay) * time.Millisecond
	if retryDelay <= 0 {
		retryDelay = time.Second
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		key:         cfg.Key,
		baseURL:     baseURL,
		hc:          &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
	}
}

// statusProbe 高德响应公共头：status为字符串"1"表示成功
type statusProbe struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Infocode string `json:"infocode"`
}

// get 发起一次带重试的GET请求并把响应体解码到out
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	reqURL := c.buildURL(endpoint, params)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err := c.doOnce(ctx, reqURL, out)
		if err == nil {
			return nil
		}
		lastErr = err
		zap.L().Warn("高德API请求失败",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", c.maxAttempts),
			zap.Error(err))

		if attempt < c.maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
	}
	return fmt.Errorf("%w: 已重试 %d 次: %v", errno.ErrAmapRequest, c.maxAttempts, lastErr)
}

func (c *Client) doOnce(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP错误: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var probe statusProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("响应体解析失败: %w", err)
	}
	if probe.Status != "" && probe.Status != "1" {
		code := probe.Infocode
		if code == "" {
			code = probe.Status
		}
		return fmt.Errorf("高德API错误 (%s): %s", code, errorMessage(code))
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// buildURL 拼接完整URL并追加key，nil/空值参数跳过
func (c *Client) buildURL(endpoint string, params map[string]string) string {
	base := strings.TrimSuffix(c.baseURL, "/")
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	vals := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		vals.Set(k, v)
	}
	vals.Set("key", c.key)

	return base + endpoint + "?" + vals.Encode()
}
