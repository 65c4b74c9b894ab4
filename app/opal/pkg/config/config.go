package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Prompt      PromptConfig      `yaml:"prompt"`
	Jackpot     JackpotConfig     `yaml:"jackpot"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	// Provider 取值 openai（OpenAI 兼容协议，走 eino）或 gemini（走 genai）
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	// Models 把界面上的两个模型标识映射到服务端真实模型名，为空时原样使用
	Models map[string]string `yaml:"models"`
	// DefaultModel 启动时选中的模型标识
	DefaultModel string `yaml:"default_model"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// PromptConfig 发送给 LLM 的文档截断长度（按字符计）
type PromptConfig struct {
	AnalyzeLimit   int `yaml:"analyze_limit"`
	ChatLimit      int `yaml:"chat_limit"`
	TranslateLimit int `yaml:"translate_limit"`
}

// JackpotConfig 风格拉霸动画参数
type JackpotConfig struct {
	IntervalMS int `yaml:"interval_ms"`
	Ticks      int `yaml:"ticks"`
}

// Interval 返回动画间隔
func (j JackpotConfig) Interval() time.Duration {
	return time.Duration(j.IntervalMS) * time.Millisecond
}

// Default 返回带默认值的配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if c.Prompt.AnalyzeLimit <= 0 {
		c.Prompt.AnalyzeLimit = 30000
	}
	if c.Prompt.ChatLimit <= 0 {
		c.Prompt.ChatLimit = 20000
	}
	if c.Prompt.TranslateLimit <= 0 {
		c.Prompt.TranslateLimit = 5000
	}
	if c.Jackpot.IntervalMS <= 0 {
		c.Jackpot.IntervalMS = 100
	}
	if c.Jackpot.Ticks <= 0 {
		c.Jackpot.Ticks = 16
	}
}

// Validate 校验必填项
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unknown llm provider: %s", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm api key is missing")
	}
	return nil
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	// 允许通过环境变量覆盖 key，避免写进配置文件
	if key := os.Getenv("OPAL_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}

	return &cfg, nil
}
