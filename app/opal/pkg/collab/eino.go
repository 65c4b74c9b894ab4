package collab

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/config"
)

// EinoBackend 通过 eino 调用 OpenAI 兼容协议的模型，每个模型标识对应一个 ChatModel
type EinoBackend struct {
	models map[Model]model.BaseChatModel
}

var _ Backend = (*EinoBackend)(nil)

// NewEinoBackend 按配置初始化两个模型
func NewEinoBackend(ctx context.Context, cfg config.LLMConfig) (*EinoBackend, error) {
	models := make(map[Model]model.BaseChatModel, len(Models()))
	for _, m := range Models() {
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   ResolveModelName(cfg, m),
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败 [%s]: %w", m, err)
		}
		models[m] = cm
	}
	return &EinoBackend{models: models}, nil
}

// NewEinoBackendWithModels 使用已创建好的 ChatModel
func NewEinoBackendWithModels(models map[Model]model.BaseChatModel) *EinoBackend {
	return &EinoBackend{models: models}
}

// Name 实现 Backend
func (b *EinoBackend) Name() string {
	return "eino"
}

// Complete 实现 Backend
func (b *EinoBackend) Complete(ctx context.Context, req Request) (string, error) {
	cm, ok := b.models[req.Model]
	if !ok {
		return "", fmt.Errorf("model %q not configured", req.Model)
	}

	messages := make([]*schema.Message, 0, len(req.Turns)+1)
	if req.System != "" {
		messages = append(messages, &schema.Message{Role: schema.System, Content: req.System})
	}
	for _, t := range req.Turns {
		role := schema.User
		if t.Role == RoleAssistant {
			role = schema.Assistant
		}
		messages = append(messages, &schema.Message{Role: role, Content: t.Content})
	}

	resp, err := cm.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}
	return resp.Content, nil
}

// ResolveModelName 把模型标识映射到服务端真实模型名
func ResolveModelName(cfg config.LLMConfig, m Model) string {
	if name := cfg.Models[string(m)]; name != "" {
		return name
	}
	return string(m)
}
