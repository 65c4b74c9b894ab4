package factory

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/config"
)

// NewBackend 根据配置创建 LLM 后端
func NewBackend(ctx context.Context, cfg *config.Config) (collab.Backend, error) {
	switch cfg.LLM.Provider {
	case "openai":
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("openai base url is missing")
		}
		return collab.NewEinoBackend(ctx, cfg.LLM)
	case "gemini", "":
		return collab.NewGenAIBackend(ctx, cfg.LLM)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLM.Provider)
	}
}

// New 根据配置创建协作方客户端（含限流与截断设置）
func New(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*collab.Client, error) {
	backend, err := NewBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	limiter := collab.NewLimiter(cfg.Concurrency.RPM, cfg.Concurrency.QPS)
	log.Infof("限流器已配置: Limit=%.2f req/s, Burst=%d", limiter.Limit(), limiter.Burst())

	return collab.NewClient(backend, collab.Options{
		Limiter: limiter,
		Limits: collab.Limits{
			Analyze:   cfg.Prompt.AnalyzeLimit,
			Chat:      cfg.Prompt.ChatLimit,
			Translate: cfg.Prompt.TranslateLimit,
		},
		Logger: log,
	}), nil
}
