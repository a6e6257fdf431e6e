package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gaugelab/gaugechat/internal/config"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicAPIVersion     = "2023-06-01"

	// Anthropic rejects requests without max_tokens, so an unset value
	// falls back to this.
	anthropicDefaultMaxTokens = 1024
)

// AnthropicAdapter speaks the Anthropic messages protocol. System-role
// messages are lifted out of the message array into the top-level system
// field; every other role is coerced onto the user/assistant alternation.
type AnthropicAdapter struct {
	store   config.Store
	client  *http.Client
	baseURL string
	timeout time.Duration
}

func NewAnthropicAdapter(store config.Store, client *http.Client) *AnthropicAdapter {
	if client == nil {
		client = NewHTTPClient()
	}
	return &AnthropicAdapter{
		store:   store,
		client:  client,
		baseURL: defaultAnthropicBaseURL,
		timeout: upstreamTimeout,
	}
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicPayload struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	TopP        float64            `json:"top_p"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage *struct {
		InputTokens  *int `json:"input_tokens"`
		OutputTokens *int `json:"output_tokens"`
	} `json:"usage"`
}

func (a *AnthropicAdapter) Chat(ctx context.Context, req Request) (*Result, error) {
	apiKey := a.store.Get("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic is %w: ANTHROPIC_API_KEY is not set", ErrProviderNotConfigured)
	}

	var systemParts []string
	var messages []anthropicMessage
	for _, msg := range req.Messages {
		if msg.Role == RoleSystem {
			systemParts = append(systemParts, msg.Content)
			continue
		}
		role := RoleUser
		if msg.Role == RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, anthropicMessage{
			Role:    role,
			Content: []anthropicContentBlock{{Type: "text", Text: msg.Content}},
		})
	}

	maxTokens := req.Settings.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	payload := anthropicPayload{
		Model:       req.Settings.ModelID,
		MaxTokens:   maxTokens,
		Temperature: req.Settings.Temperature,
		TopP:        req.Settings.TopP,
		System:      strings.Join(systemParts, "\n\n"),
		Messages:    messages,
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := postJSON(ctx, a.client, "Anthropic", a.baseURL+"/messages", payload, map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": anthropicAPIVersion,
	})
	if err != nil {
		return nil, classifyTransportError("Anthropic", err)
	}
	if upErr := body.err; upErr != nil {
		return nil, upErr
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body.raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode anthropic response: %w", err)
	}

	content := ""
	if len(parsed.Content) > 0 {
		content = parsed.Content[0].Text
	}

	result := &Result{
		Message: Message{Role: RoleAssistant, Content: content},
		Raw:     body.raw,
	}
	if parsed.Usage != nil {
		input := intOrZero(parsed.Usage.InputTokens)
		output := intOrZero(parsed.Usage.OutputTokens)
		result.Usage = &Usage{
			PromptTokens:     input,
			CompletionTokens: output,
			TotalTokens:      input + output,
		}
	}
	return result, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
