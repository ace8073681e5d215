package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Client talks to the Gemini API through the genai SDK. Safe for concurrent use.
type Client struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: client, model: cfg.Model}, nil
}

// GenerateContent returns the concatenated text of the first candidate.
func (g *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents, config := buildContents(req)

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	resp := toResponse(result)
	if resp.Text == "" {
		return nil, fmt.Errorf("gemini: empty response")
	}
	return resp, nil
}

func (g *Client) Model() string {
	return g.model
}

// buildContents converts request to the SDK's contents and generation config
func buildContents(req *Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		var role genai.Role = genai.RoleUser
		if m.Role == "assistant" || m.Role == string(genai.RoleModel) {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	return contents, config
}

// toResponse concatenates the text parts of the first candidate
func toResponse(result *genai.GenerateContentResponse) *Response {
	resp := &Response{Usage: &Usage{}}
	if result == nil {
		return resp
	}

	if len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				resp.Text += part.Text
			}
		}
	}

	if u := result.UsageMetadata; u != nil {
		resp.Usage.InputTokens = int(u.PromptTokenCount)
		resp.Usage.OutputTokens = int(u.CandidatesTokenCount)
		resp.Usage.TotalTokens = int(u.TotalTokenCount)
	}
	return resp
}
