package openai

import "time"

const (
	FlavorOpenAI   = "openai"
	FlavorDeepSeek = "deepseek"
	FlavorQwen     = "qwen"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// defaults holds the endpoint and model used when a flavor is configured without them.
var defaults = map[string]struct {
	baseURL string
	model   string
}{
	FlavorOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
	FlavorDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	FlavorQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
}
