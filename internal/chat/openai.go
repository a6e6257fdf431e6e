package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gaugelab/gaugechat/internal/config"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIAdapter speaks the OpenAI chat completions protocol.
type OpenAIAdapter struct {
	store   config.Store
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// NewOpenAIAdapter creates the adapter. A nil client falls back to the
// shared upstream client; baseURL overrides exist for tests.
func NewOpenAIAdapter(store config.Store, client *http.Client) *OpenAIAdapter {
	if client == nil {
		client = NewHTTPClient()
	}
	return &OpenAIAdapter{
		store:   store,
		client:  client,
		baseURL: defaultOpenAIBaseURL,
		timeout: upstreamTimeout,
	}
}

type openAIPayload struct {
	Model            string          `json:"model"`
	Temperature      float64         `json:"temperature"`
	MaxTokens        int             `json:"max_tokens,omitempty"`
	TopP             float64         `json:"top_p"`
	PresencePenalty  float64         `json:"presence_penalty"`
	FrequencyPenalty float64         `json:"frequency_penalty"`
	ResponseFormat   *responseFormat `json:"response_format,omitempty"`
	Messages         []Message       `json:"messages"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (a *OpenAIAdapter) Chat(ctx context.Context, req Request) (*Result, error) {
	apiKey := a.store.Get("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI is %w: OPENAI_API_KEY is not set", ErrProviderNotConfigured)
	}

	payload := openAIPayload{
		Model:            req.Settings.ModelID,
		Temperature:      req.Settings.Temperature,
		MaxTokens:        req.Settings.MaxTokens,
		TopP:             req.Settings.TopP,
		PresencePenalty:  req.Settings.PresencePenalty,
		FrequencyPenalty: req.Settings.FrequencyPenalty,
		Messages:         req.Messages,
	}
	if req.Settings.ResponseFormat == FormatJSON {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := postJSON(ctx, a.client, "OpenAI", a.baseURL+"/chat/completions", payload, map[string]string{
		"Authorization": "Bearer " + apiKey,
	})
	if err != nil {
		return nil, classifyTransportError("OpenAI", err)
	}
	if upErr := body.err; upErr != nil {
		return nil, upErr
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body.raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}

	msg := Message{Role: RoleAssistant}
	if len(parsed.Choices) > 0 {
		choice := parsed.Choices[0].Message
		if choice.Role != "" {
			msg.Role = choice.Role
		}
		msg.Content = choice.Content
	}

	result := &Result{Message: msg, Raw: body.raw}
	if parsed.Usage != nil {
		result.Usage = &Usage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
		}
	}
	return result, nil
}

