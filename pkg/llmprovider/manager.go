package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voice-memos/pkg/chatapi"
	"voice-memos/pkg/log"
)

// Policy controls retries and fallback across providers.
type Policy struct {
	FallbackEnabled bool
	RetryAttempts   int           // per provider, at least 1
	RetryDelay      time.Duration // doubled after every failed attempt, quadrupled after a 429
	MaxTotalTimeout time.Duration // bounds the whole chain; 0 means no bound
}

// Manager sends a request to its providers in priority order until one answers.
// It is safe for concurrent use when the providers are.
type Manager struct {
	providers []Provider
	policy    Policy
	l         log.Logger
}

func NewManager(providers []Provider, policy Policy, l log.Logger) *Manager {
	if policy.RetryAttempts < 1 {
		policy.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		policy:    policy,
		l:         l,
	}
}

// GenerateContent returns the first non-empty answer. When every provider
// fails the error wraps ErrAllProvidersFailed and one ProviderError each.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if m.policy.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.policy.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for _, p := range m.providers {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		resp, attempts, err := m.try(ctx, p, req)
		if err == nil {
			m.logSuccess(ctx, p, resp, attempts)
			return resp, nil
		}

		perr := &ProviderError{Provider: p.Name(), Attempts: attempts, Err: err}
		m.l.Warnf(ctx, "llmprovider.Manager: %s/%s failed: %v", p.Name(), p.Model(), perr)
		errs = append(errs, perr)

		if !m.policy.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// try calls p up to RetryAttempts times and reports how many calls were made.
func (m *Manager) try(ctx context.Context, p Provider, req *Request) (*Response, int, error) {
	delay := m.policy.RetryDelay
	var err error

	for attempt := 1; attempt <= m.policy.RetryAttempts; attempt++ {
		if attempt > 1 {
			wait := delay
			if chatapi.IsRateLimited(err) {
				wait *= 2
			}
			select {
			case <-time.After(wait):
				delay *= 2
			case <-ctx.Done():
				return nil, attempt - 1, ctx.Err()
			}
		}

		var resp *Response
		resp, err = p.GenerateContent(ctx, req)
		if err == nil && strings.TrimSpace(resp.Text) == "" {
			err = ErrEmptyAnswer
		}
		if err == nil {
			if resp.ProviderName == "" {
				resp.ProviderName = p.Name()
			}
			if resp.ModelName == "" {
				resp.ModelName = p.Model()
			}
			return resp, attempt, nil
		}
		m.l.Debugf(ctx, "llmprovider.Manager: %s attempt %d: %v", p.Name(), attempt, err)
	}

	return nil, m.policy.RetryAttempts, err
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, resp *Response, attempts int) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.l.Infof(ctx, "llmprovider.Manager: answered by %s/%s after %d attempt(s), tokens in=%d out=%d",
		p.Name(), p.Model(), attempts, in, out)
}

func validateRequest(req *Request) error {
	if req == nil || len(req.Messages) == 0 {
		return fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	for _, msg := range req.Messages {
		if strings.TrimSpace(msg.Text) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: all messages are blank", ErrInvalidRequest)
}
