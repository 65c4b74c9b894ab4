// Package jackpot 实现"风格拉霸"：在固定次数的短间隔内随机切换当前风格，最后停在随机结果上。
package jackpot

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
)

const (
	// DefaultInterval 默认每次切换的间隔
	DefaultInterval = 100 * time.Millisecond
	// DefaultTicks 默认切换次数
	DefaultTicks = 16
)

// Options 拉霸参数
type Options struct {
	Interval time.Duration
	Ticks    int
	// Pick 返回 [0,n) 内的随机下标，默认均匀分布
	Pick   func(n int) int
	Styles []style.Style
	Logger logrus.FieldLogger
}

// Spinner 风格拉霸，同一时间最多只有一轮动画在运行
type Spinner struct {
	publish  func(style.Style)
	interval time.Duration
	ticks    int
	pick     func(n int) int
	styles   []style.Style
	log      logrus.FieldLogger

	spinning atomic.Bool
	wg       sync.WaitGroup
}

// New 创建拉霸实例，publish 在每次切换时被调用
func New(publish func(style.Style), opts Options) *Spinner {
	s := &Spinner{
		publish:  publish,
		interval: opts.Interval,
		ticks:    opts.Ticks,
		pick:     opts.Pick,
		styles:   opts.Styles,
		log:      opts.Logger,
	}
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.ticks <= 0 {
		s.ticks = DefaultTicks
	}
	if s.pick == nil {
		s.pick = rand.IntN
	}
	if len(s.styles) == 0 {
		s.styles = style.Registry()
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s
}

// Spin 开始一轮动画；已经在转时直接返回 false
func (s *Spinner) Spin() bool {
	if !s.spinning.CompareAndSwap(false, true) {
		return false
	}
	s.wg.Add(1)
	go s.run()
	return true
}

func (s *Spinner) run() {
	defer s.wg.Done()
	defer s.spinning.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last style.Style
	for i := 0; i < s.ticks; i++ {
		<-ticker.C
		last = s.styles[s.pick(len(s.styles))]
		s.publish(last)
	}
	s.log.WithField("style", last.ID).Debug("jackpot settled")
}

// Spinning 是否正在转
func (s *Spinner) Spinning() bool {
	return s.spinning.Load()
}

// Wait 阻塞到当前这一轮动画结束
func (s *Spinner) Wait() {
	s.wg.Wait()
}

// Ticks 每轮切换次数
func (s *Spinner) Ticks() int {
	return s.ticks
}
