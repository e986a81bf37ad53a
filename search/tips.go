package search

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"freight_service/amap"

	"go.uber.org/zap"
)

// TipsFetcher 地点联想数据源，由 amap.Client 实现
type TipsFetcher interface {
	InputTips(ctx context.Context, keywords, city string) ([]amap.Tip, error)
}

// Options 搜索器配置，零值字段落默认值
type Options struct {
	City          string        // 默认搜索城市
	DebounceDelay time.Duration // 防抖延迟
	MinKeywordLen int           // 最小关键词长度（按字符计）
	MaxResults    int           // 最大结果数量

	// OnResult 搜索成功回调；关键词被清空时以nil结果回调一次
	OnResult func(keywords string, tips []amap.Tip)
	// OnError 搜索失败回调，可为nil
	OnError func(keywords string, err error)
}

// Searcher 防抖地点搜索
// 每次搜索发放一个单调递增的请求令牌；请求完成时令牌已不是最新值的，
// 结果静默丢弃，既不更新状态也不报错
type Searcher struct {
	fetcher TipsFetcher
	opts    Options

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc

	seq atomic.Uint64 // 最新发放的请求令牌
}

// NewSearcher 创建搜索器
func NewSearcher(fetcher TipsFetcher, opts Options) *Searcher {
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = 300 * time.Millisecond
	}
	if opts.MinKeywordLen <= 0 {
		opts.MinKeywordLen = 2
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}
	if opts.City == "" {
		opts.City = "北京"
	}
	return &Searcher{fetcher: fetcher, opts: opts}
}

// Search 防抖搜索：延迟窗口内的连续调用只有最后一次生效
// 关键词为空或长度不足时清空结果并取消在途请求
func (s *Searcher) Search(keywords string) {
	s.mu.Lock()
	s.clearTimerLocked()

	kw := strings.TrimSpace(keywords)
	if len([]rune(kw)) < s.opts.MinKeywordLen {
		s.cancelInflightLocked()
		s.mu.Unlock()
		if s.opts.OnResult != nil {
			s.opts.OnResult(kw, nil)
		}
		return
	}

	s.timer = time.AfterFunc(s.opts.DebounceDelay, func() {
		s.perform(kw)
	})
	s.mu.Unlock()
}

// SearchNow 立即搜索，不经过防抖窗口
func (s *Searcher) SearchNow(keywords string) {
	s.mu.Lock()
	s.clearTimerLocked()
	s.mu.Unlock()

	kw := strings.TrimSpace(keywords)
	if len([]rune(kw)) < s.opts.MinKeywordLen {
		return
	}
	s.perform(kw)
}

// Stop 停止搜索器：清掉未触发的定时器并作废在途请求（卸载清理）
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearTimerLocked()
	s.cancelInflightLocked()
	// 令牌前进一格，任何尚未回来的请求结果都会被丢弃
	s.seq.Add(1)
}

func (s *Searcher) perform(keywords string) {
	// 作废上一个在途请求
	s.mu.Lock()
	s.cancelInflightLocked()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	token := s.seq.Add(1)

	go func() {
		defer cancel()
		tips, err := s.fetcher.InputTips(ctx, keywords, s.opts.City)

		// 请求已过期，忽略结果
		if token != s.seq.Load() {
			zap.L().Debug("搜索结果已过期，丢弃", zap.String("keywords", keywords))
			return
		}

		if err != nil {
			if ctx.Err() != nil {
				return // 主动取消，不回调
			}
			if s.opts.OnError != nil {
				s.opts.OnError(keywords, err)
			}
			return
		}

		if len(tips) > s.opts.MaxResults {
			tips = tips[:s.opts.MaxResults]
		}
		if s.opts.OnResult != nil {
			s.opts.OnResult(keywords, tips)
		}
	}()
}

func (s *Searcher) clearTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) cancelInflightLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
