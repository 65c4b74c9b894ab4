package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/config"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/logger"
)

func TestNewBackend_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.Provider = "tavily"
	_, err := NewBackend(context.Background(), cfg)
	assert.EqualError(t, err, "unknown llm provider: tavily")

	cfg.LLM.Provider = "openai"
	_, err = NewBackend(context.Background(), cfg)
	assert.EqualError(t, err, "openai base url is missing")

	cfg.LLM.Provider = "gemini"
	_, err = NewBackend(context.Background(), cfg)
	assert.EqualError(t, err, "GenAI API key is required")
}

func TestNew_OpenAI(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.Provider = "openai"
	cfg.LLM.BaseURL = "http://127.0.0.1:1/v1"
	cfg.LLM.APIKey = "sk-test"

	c, err := New(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	var _ collab.Collaborator = c
}
