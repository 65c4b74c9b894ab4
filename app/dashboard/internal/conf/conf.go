package conf

type Bootstrap struct {
	Server *Server `json:"server"`
	Opal   *Opal   `json:"opal"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Opal 引擎配置，启动时转换为 pkg/config.Config
type Opal struct {
	Llm         *LLM         `json:"llm"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
	Prompt      *Prompt      `json:"prompt"`
	Jackpot     *Jackpot     `json:"jackpot"`
}

type LLM struct {
	Provider     string            `json:"provider"`
	BaseUrl      string            `json:"base_url"`
	ApiKey       string            `json:"api_key"`
	Models       map[string]string `json:"models"`
	DefaultModel string            `json:"default_model"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

type Prompt struct {
	AnalyzeLimit   int32 `json:"analyze_limit"`
	ChatLimit      int32 `json:"chat_limit"`
	TranslateLimit int32 `json:"translate_limit"`
}

type Jackpot struct {
	IntervalMs int32 `json:"interval_ms"`
	Ticks      int32 `json:"ticks"`
}
