// Package collab 封装外部生成式 AI 协作方：图表数据分析、基于文章的对话、魔法工具。
package collab

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
)

// Model 界面上可选的模型标识，固定两个取值
type Model string

const (
	ModelGemini3Flash  Model = "gemini-3-flash-preview"
	ModelGemini25Flash Model = "gemini-2.5-flash-latest"
)

// DefaultModel 默认模型
const DefaultModel = ModelGemini3Flash

// Models 返回全部模型标识
func Models() []Model {
	return []Model{ModelGemini3Flash, ModelGemini25Flash}
}

// ParseModel 解析模型标识
func ParseModel(s string) (Model, bool) {
	for _, m := range Models() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Label 模型的展示名
func (m Model) Label() string {
	switch m {
	case ModelGemini3Flash:
		return "Gemini 3.0 Flash"
	case ModelGemini25Flash:
		return "Gemini 2.5 Flash"
	}
	return string(m)
}

// Role 对话角色
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn 对话中的一轮
type Turn struct {
	Role    Role
	Content string
}

// ToolParams 魔法工具的可选参数
type ToolParams map[string]string

// Collaborator 外部协作方
type Collaborator interface {
	// AnalyzeCharts 分析文本并返回六组图表数据
	AnalyzeCharts(ctx context.Context, text string, m Model) (*chart.Dataset, error)
	// Chat 基于文章内容回答，history 的最后一项是本轮用户输入
	Chat(ctx context.Context, history []Turn, document string, m Model) (string, error)
	// RunTool 执行一次模板化的分析
	RunTool(ctx context.Context, tool Tool, document string, m Model, params ToolParams) (string, error)
}

// ErrEmptyResponse 协作方返回了空内容
var ErrEmptyResponse = errors.New("empty response from model")

// Request 一次补全请求
type Request struct {
	Model  Model
	System string
	Turns  []Turn
	// JSON 要求返回图表数据 JSON
	JSON bool
}

// Backend 具体的 LLM 服务
type Backend interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Limits 发送给 LLM 的文档截断长度（字符）
type Limits struct {
	Analyze   int
	Chat      int
	Translate int
}

// DefaultLimits 默认截断长度
var DefaultLimits = Limits{Analyze: 30000, Chat: 20000, Translate: 5000}

// Options 客户端参数
type Options struct {
	Limiter *rate.Limiter
	Limits  Limits
	Logger  logrus.FieldLogger
}

// Client 基于某个 Backend 实现 Collaborator
type Client struct {
	backend Backend
	limiter *rate.Limiter
	limits  Limits
	log     logrus.FieldLogger
}

var _ Collaborator = (*Client)(nil)

// NewClient 创建协作方客户端
func NewClient(b Backend, opts Options) *Client {
	c := &Client{
		backend: b,
		limiter: opts.Limiter,
		limits:  opts.Limits,
		log:     opts.Logger,
	}
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if c.limits.Analyze <= 0 {
		c.limits.Analyze = DefaultLimits.Analyze
	}
	if c.limits.Chat <= 0 {
		c.limits.Chat = DefaultLimits.Chat
	}
	if c.limits.Translate <= 0 {
		c.limits.Translate = DefaultLimits.Translate
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	return c
}

// NewLimiter 按 RPM/QPS 创建限流器：速率为 RPM/60，突发为 QPS
func NewLimiter(rpm, qps int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	if qps <= 0 {
		qps = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), qps)
}

func (c *Client) complete(ctx context.Context, req Request) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	out, err := c.backend.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.backend.Name(), err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

// AnalyzeCharts 实现 Collaborator
func (c *Client) AnalyzeCharts(ctx context.Context, text string, m Model) (*chart.Dataset, error) {
	log := c.log.WithFields(logrus.Fields{"model": m, "chars": utf8.RuneCountInString(text)})
	log.Info("requesting chart analysis")

	out, err := c.complete(ctx, Request{
		Model:  m,
		System: jsonSystemPrompt,
		Turns:  []Turn{{Role: RoleUser, Content: AnalyzePrompt(text, c.limits.Analyze)}},
		JSON:   true,
	})
	if err != nil {
		log.Errorf("chart analysis failed: %v", err)
		return nil, err
	}

	ds, err := chart.Parse([]byte(out))
	if err != nil {
		log.Errorf("chart analysis returned bad data: %v", err)
		return nil, err
	}
	log.Debug("chart analysis parsed")
	return ds, nil
}

// Chat 实现 Collaborator
func (c *Client) Chat(ctx context.Context, history []Turn, document string, m Model) (string, error) {
	out, err := c.complete(ctx, Request{
		Model:  m,
		System: ChatSystemPrompt(document, c.limits.Chat),
		Turns:  history,
	})
	if err != nil {
		c.log.WithField("model", m).Errorf("chat failed: %v", err)
		return "", err
	}
	return out, nil
}

// RunTool 实现 Collaborator
func (c *Client) RunTool(ctx context.Context, tool Tool, document string, m Model, params ToolParams) (string, error) {
	prompt := ToolPrompt(tool, document, params, c.limits.Translate)
	out, err := c.complete(ctx, Request{
		Model: m,
		Turns: []Turn{{Role: RoleUser, Content: prompt}},
	})
	if err != nil {
		c.log.WithFields(logrus.Fields{"model": m, "tool": tool}).Errorf("tool failed: %v", err)
		return "", err
	}
	return out, nil
}

// Truncate 按字符截断，不会切断多字节字符
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
