package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voice-memos/pkg/chatapi"
)

// scriptedProvider answers with the next entry of replies, repeating the last one.
type scriptedProvider struct {
	name    string
	replies []reply

	mu    sync.Mutex
	calls int
}

type reply struct {
	text string
	err  error
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := p.replies[min(p.calls, len(p.replies)-1)]
	p.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &Response{Text: r.text, Usage: &Usage{InputTokens: 10, OutputTokens: 1}}, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.name + "-model" }

// recordingLogger counts Infof and Warnf calls.
type recordingLogger struct {
	mu    sync.Mutex
	infos int
	warns int
}

func (l *recordingLogger) Debug(ctx context.Context, arg ...any)                   {}
func (l *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (l *recordingLogger) Info(ctx context.Context, arg ...any)                    {}
func (l *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.mu.Lock()
	l.infos++
	l.mu.Unlock()
}
func (l *recordingLogger) Warn(ctx context.Context, arg ...any) {}
func (l *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.mu.Lock()
	l.warns++
	l.mu.Unlock()
}
func (l *recordingLogger) Error(ctx context.Context, arg ...any)                    {}
func (l *recordingLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (l *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (l *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (l *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (l *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (l *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (l *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var errBoom = errors.New("upstream 503")

func labelRequest() *Request {
	return UserPrompt("Reply with one category word.", "buy milk and eggs")
}

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name      string
		providers []*scriptedProvider
		policy    Policy
		wantText  string
		wantFrom  string
		wantCalls []int
		wantWarns int
		wantErr   error
	}{
		{
			name:      "primary answers",
			providers: []*scriptedProvider{{name: "deepseek", replies: []reply{{text: "shopping"}}}, {name: "gemini", replies: []reply{{text: "food"}}}},
			policy:    Policy{FallbackEnabled: true, RetryAttempts: 3},
			wantText:  "shopping",
			wantFrom:  "deepseek",
			wantCalls: []int{1, 0},
		},
		{
			name:      "retry then succeed",
			providers: []*scriptedProvider{{name: "deepseek", replies: []reply{{err: errBoom}, {text: "shopping"}}}},
			policy:    Policy{RetryAttempts: 3, RetryDelay: time.Millisecond},
			wantText:  "shopping",
			wantFrom:  "deepseek",
			wantCalls: []int{2},
		},
		{
			name:      "empty answer falls back",
			providers: []*scriptedProvider{{name: "deepseek", replies: []reply{{text: "  "}}}, {name: "qwen", replies: []reply{{text: "shopping"}}}},
			policy:    Policy{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantText:  "shopping",
			wantFrom:  "qwen",
			wantCalls: []int{2, 1},
			wantWarns: 1,
		},
		{
			name:      "fallback disabled",
			providers: []*scriptedProvider{{name: "deepseek", replies: []reply{{err: errBoom}}}, {name: "qwen", replies: []reply{{text: "shopping"}}}},
			policy:    Policy{RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantCalls: []int{2, 0},
			wantWarns: 1,
			wantErr:   ErrAllProvidersFailed,
		},
		{
			name:      "all fail",
			providers: []*scriptedProvider{{name: "deepseek", replies: []reply{{err: errBoom}}}, {name: "qwen", replies: []reply{{err: errBoom}}}},
			policy:    Policy{FallbackEnabled: true},
			wantCalls: []int{1, 1},
			wantWarns: 2,
			wantErr:   errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]Provider, len(tt.providers))
			for i, p := range tt.providers {
				providers[i] = p
			}
			l := &recordingLogger{}

			resp, err := NewManager(providers, tt.policy, l).GenerateContent(context.Background(), labelRequest())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Text != tt.wantText || resp.ProviderName != tt.wantFrom {
					t.Errorf("expected %q from %s, got %q from %s", tt.wantText, tt.wantFrom, resp.Text, resp.ProviderName)
				}
				if resp.ModelName != tt.wantFrom+"-model" {
					t.Errorf("model name not filled in: %q", resp.ModelName)
				}
				if l.infos != 1 {
					t.Errorf("expected 1 success log, got %d", l.infos)
				}
			}

			for i, want := range tt.wantCalls {
				if tt.providers[i].calls != want {
					t.Errorf("%s: expected %d call(s), got %d", tt.providers[i].name, want, tt.providers[i].calls)
				}
			}
			if l.warns != tt.wantWarns {
				t.Errorf("expected %d warning(s), got %d", tt.wantWarns, l.warns)
			}
		})
	}
}

func TestGenerateContent_ProviderErrorDetails(t *testing.T) {
	p := &scriptedProvider{name: "gemini", replies: []reply{{err: errBoom}}}
	_, err := NewManager([]Provider{p}, Policy{RetryAttempts: 2, RetryDelay: time.Millisecond}, &recordingLogger{}).
		GenerateContent(context.Background(), labelRequest())

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a ProviderError, got %v", err)
	}
	if perr.Provider != "gemini" || perr.Attempts != 2 {
		t.Errorf("unexpected details: %+v", perr)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	p := &scriptedProvider{name: "deepseek", replies: []reply{{text: "work"}}}
	m := NewManager([]Provider{p}, Policy{}, &recordingLogger{})

	for _, req := range []*Request{nil, {}, UserPrompt("system", "   ")} {
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	}
	if p.calls != 0 {
		t.Error("invalid requests must not reach a provider")
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	_, err := NewManager(nil, Policy{}, &recordingLogger{}).GenerateContent(context.Background(), labelRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_DeadlineStopsRetries(t *testing.T) {
	p := &scriptedProvider{name: "deepseek", replies: []reply{{err: errBoom}}}
	policy := Policy{RetryAttempts: 5, RetryDelay: time.Second, MaxTotalTimeout: 50 * time.Millisecond}

	start := time.Now()
	_, err := NewManager([]Provider{p}, policy, &recordingLogger{}).GenerateContent(context.Background(), labelRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
	if time.Since(start) > 900*time.Millisecond {
		t.Error("retry backoff ignored the deadline")
	}
	if p.calls != 1 {
		t.Errorf("expected 1 call before the deadline, got %d", p.calls)
	}
}

func TestGenerateContent_RateLimitedWaitsLonger(t *testing.T) {
	const delay = 40 * time.Millisecond
	throttled := &chatapi.APIError{Provider: "primary", StatusCode: 429, Message: "slow down"}
	p := &scriptedProvider{name: "primary", replies: []reply{{err: throttled}, {text: "work"}}}
	m := NewManager([]Provider{p}, Policy{RetryAttempts: 2, RetryDelay: delay}, &recordingLogger{})

	start := time.Now()
	resp, err := m.GenerateContent(context.Background(), UserPrompt("", "ship it"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "work" {
		t.Errorf("unexpected answer %q", resp.Text)
	}
	if elapsed := time.Since(start); elapsed < 2*delay {
		t.Errorf("expected at least %v before retrying a 429, waited %v", 2*delay, elapsed)
	}
}
