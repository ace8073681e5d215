package llmprovider

import (
	"context"

	"voice-memos/pkg/chatapi"
	"voice-memos/pkg/gemini"
)

// chatCompleter is an OpenAI-compatible client (deepseek, qwen).
type chatCompleter interface {
	Complete(ctx context.Context, req *chatapi.Request) (*chatapi.Response, error)
	Model() string
}

// chatAdapter exposes an OpenAI-compatible client as a Provider.
type chatAdapter struct {
	name   string
	client chatCompleter
}

func newChatAdapter(name string, client chatCompleter) *chatAdapter {
	return &chatAdapter{name: name, client: client}
}

func (a *chatAdapter) Name() string  { return a.name }
func (a *chatAdapter) Model() string { return a.client.Model() }

func (a *chatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]chatapi.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, chatapi.Message{Role: chatapi.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		role := chatapi.RoleUser
		if m.Role == RoleAssistant {
			role = chatapi.RoleAssistant
		}
		msgs = append(msgs, chatapi.Message{Role: role, Content: m.Text})
	}

	resp, err := a.client.Complete(ctx, &chatapi.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

type geminiClient interface {
	GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error)
	Model() string
}

// geminiAdapter exposes the Gemini SDK client as a Provider.
type geminiAdapter struct {
	client geminiClient
}

func (a *geminiAdapter) Name() string  { return "gemini" }
func (a *geminiAdapter) Model() string { return a.client.Model() }

func (a *geminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	out := &Response{Text: resp.Text, ProviderName: a.Name(), ModelName: a.client.Model()}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}
