// Package qwen configures a chatapi client for Alibaba DashScope's
// OpenAI-compatible mode.
package qwen

import (
	"time"

	"voice-memos/pkg/chatapi"
)

const (
	Name           = "qwen"
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DefaultModel   = "qwen-turbo"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) (*chatapi.Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return chatapi.New(chatapi.Config{
		Provider: Name,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
		Timeout:  cfg.Timeout,
	})
}
