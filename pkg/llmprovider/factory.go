package llmprovider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"voice-memos/config"
	"voice-memos/pkg/deepseek"
	"voice-memos/pkg/gemini"
	"voice-memos/pkg/log"
	"voice-memos/pkg/qwen"
)

// InitializeProviders builds the enabled providers ordered by priority.
// A provider that cannot be built is logged and left out; only when none
// can be built is an error returned.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil LLM config", ErrNoProvidersConfigured)
	}

	enabled := slices.DeleteFunc(slices.Clone(cfg.Providers), func(p config.ProviderConfig) bool {
		return !p.Enabled
	})
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	slices.SortStableFunc(enabled, func(a, b config.ProviderConfig) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	var (
		providers []Provider
		failures  []error
	)
	for _, pc := range enabled {
		p, err := createProvider(ctx, pc)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s (priority %d): %v", pc.Name, pc.Priority, err)
			failures = append(failures, fmt.Errorf("%s: %w", pc.Name, err))
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoProvidersConfigured, errors.Join(failures...))
	}
	return providers, nil
}

// NewManagerFromConfig builds the providers and a Manager with the configured retry policy.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	return NewManager(providers, Policy{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 60*time.Second),
	}, l), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}
	timeout := parseDuration(cfg.Timeout, 0)

	switch cfg.Name {
	case deepseek.Name:
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return newChatAdapter(deepseek.Name, client), nil

	case qwen.Name, "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return newChatAdapter(qwen.Name, client), nil

	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
		return &geminiAdapter{client: client}, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
