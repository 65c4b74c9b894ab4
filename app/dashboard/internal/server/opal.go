package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/opal_dashboard/app/dashboard/internal/conf"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab/factory"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/config"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/jackpot"
	opalLogger "github.com/iWorld-y/opal_dashboard/app/opal/pkg/logger"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/workspace"
)

// NewOpalConfig 将 internal/conf.Opal 转换为 pkg/config.Config
func NewOpalConfig(c *conf.Opal) *config.Config {
	cfg := config.Default()
	if c == nil {
		return cfg
	}
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			Provider:     c.Llm.Provider,
			BaseURL:      c.Llm.BaseUrl,
			APIKey:       c.Llm.ApiKey,
			Models:       c.Llm.Models,
			DefaultModel: c.Llm.DefaultModel,
		}
		if cfg.LLM.Provider == "" {
			cfg.LLM.Provider = "gemini"
		}
	}
	if c.Log != nil {
		if c.Log.Level != "" {
			cfg.Log.Level = c.Log.Level
		}
		cfg.Log.File = c.Log.File
	}
	if c.Concurrency != nil {
		if c.Concurrency.Qps > 0 {
			cfg.Concurrency.QPS = int(c.Concurrency.Qps)
		}
		if c.Concurrency.Rpm > 0 {
			cfg.Concurrency.RPM = int(c.Concurrency.Rpm)
		}
	}
	if c.Prompt != nil {
		if c.Prompt.AnalyzeLimit > 0 {
			cfg.Prompt.AnalyzeLimit = int(c.Prompt.AnalyzeLimit)
		}
		if c.Prompt.ChatLimit > 0 {
			cfg.Prompt.ChatLimit = int(c.Prompt.ChatLimit)
		}
		if c.Prompt.TranslateLimit > 0 {
			cfg.Prompt.TranslateLimit = int(c.Prompt.TranslateLimit)
		}
	}
	if c.Jackpot != nil {
		if c.Jackpot.IntervalMs > 0 {
			cfg.Jackpot.IntervalMS = int(c.Jackpot.IntervalMs)
		}
		if c.Jackpot.Ticks > 0 {
			cfg.Jackpot.Ticks = int(c.Jackpot.Ticks)
		}
	}
	return cfg
}

// NewWorkspace 初始化会话状态和协作方。
// 协作方配置无效时仍然启动，此时所有 AI 操作都会以提示的形式失败。
func NewWorkspace(c *conf.Opal, logger log.Logger) (*workspace.Workspace, func(), error) {
	helper := log.NewHelper(logger)
	cfg := NewOpalConfig(c)

	// 初始化日志
	if err := opalLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init opal logger: %v", err)
		_ = opalLogger.InitLogger("info", "") // 降级处理
	}

	var cb collab.Collaborator
	if err := cfg.Validate(); err != nil {
		helper.Warnf("AI collaborator disabled: %v", err)
	} else {
		client, err := factory.New(context.Background(), cfg, opalLogger.Log)
		if err != nil {
			helper.Errorf("Failed to init AI collaborator: %v", err)
			return nil, nil, err
		}
		cb = client
	}

	ws := workspace.New(workspace.Options{
		Collaborator: cb,
		Logger:       opalLogger.Log.WithField("component", "workspace"),
	})
	if m, ok := collab.ParseModel(cfg.LLM.DefaultModel); ok {
		ws.SelectModel(m)
	}

	cleanup := func() {
		helper.Info("Cleaning up opal workspace")
	}
	return ws, cleanup, nil
}

// NewSpinner 创建风格拉霸，每次切换直接写入工作区
func NewSpinner(c *conf.Opal, ws *workspace.Workspace) *jackpot.Spinner {
	cfg := NewOpalConfig(c)
	return jackpot.New(ws.SetStyle, jackpot.Options{
		Interval: cfg.Jackpot.Interval(),
		Ticks:    cfg.Jackpot.Ticks,
		Logger:   opalLogger.Log.WithField("component", "jackpot"),
	})
}
