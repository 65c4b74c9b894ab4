package collab

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/config"
)

// GenAIBackend 通过 Google GenAI SDK 调用 Gemini
type GenAIBackend struct {
	client *genai.Client
	cfg    config.LLMConfig
}

var _ Backend = (*GenAIBackend)(nil)

// NewGenAIBackend 创建 Gemini 客户端
func NewGenAIBackend(ctx context.Context, cfg config.LLMConfig) (*GenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIBackend{client: client, cfg: cfg}, nil
}

// Name 实现 Backend
func (b *GenAIBackend) Name() string {
	return "genai"
}

// Complete 实现 Backend
func (b *GenAIBackend) Complete(ctx context.Context, req Request) (string, error) {
	contents := make([]*genai.Content, 0, len(req.Turns))
	for _, t := range req.Turns {
		role := genai.RoleUser
		if t.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, genai.Role(role)))
	}

	gc := &genai.GenerateContentConfig{}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = datasetSchema()
	}

	resp, err := b.client.Models.GenerateContent(ctx, ResolveModelName(b.cfg, req.Model), contents, gc)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// datasetSchema 六组图表数据的响应结构
func datasetSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	num := &genai.Schema{Type: genai.TypeNumber}
	list := func(props map[string]*genai.Schema) *genai.Schema {
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeObject, Properties: props},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"timeline":          list(map[string]*genai.Schema{"date": str, "event": str, "type": str}),
			"complianceHeatmap": list(map[string]*genai.Schema{"region": str, "score": num, "complexity": num}),
			"riskMatrix":        list(map[string]*genai.Schema{"id": str, "name": str, "probability": num, "severity": num, "category": str}),
			"techNetwork":       list(map[string]*genai.Schema{"source": str, "target": str, "value": num}),
			"checklist":         list(map[string]*genai.Schema{"phase": str, "progress": num, "status": str}),
			"burden":            list(map[string]*genai.Schema{"metric": str, "us": num, "eu": num, "cn": num}),
		},
		Required: []string{"timeline", "complianceHeatmap", "riskMatrix", "techNetwork", "checklist", "burden"},
	}
}
