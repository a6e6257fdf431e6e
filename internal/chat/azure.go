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

const azureAPIVersion = "2024-02-15-preview"

// AzureOpenAIAdapter speaks the deployment-scoped Azure OpenAI chat
// completions protocol. The endpoint, key, and deployment name all come
// from the store; the model is fixed by the deployment, so the request
// carries no model field.
type AzureOpenAIAdapter struct {
	store   config.Store
	client  *http.Client
	timeout time.Duration
}

func NewAzureOpenAIAdapter(store config.Store, client *http.Client) *AzureOpenAIAdapter {
	if client == nil {
		client = NewHTTPClient()
	}
	return &AzureOpenAIAdapter{
		store:   store,
		client:  client,
		timeout: upstreamTimeout,
	}
}

type azurePayload struct {
	Messages         []Message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	MaxTokens        int       `json:"max_tokens,omitempty"`
	TopP             float64   `json:"top_p"`
	PresencePenalty  float64   `json:"presence_penalty"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
}

func (a *AzureOpenAIAdapter) Chat(ctx context.Context, req Request) (*Result, error) {
	endpoint := a.store.Get("AZURE_OPENAI_ENDPOINT")
	apiKey := a.store.Get("AZURE_OPENAI_API_KEY")
	deployment := a.store.Get("AZURE_OPENAI_DEPLOYMENT")

	// The dispatcher already reported the precise missing subset; this
	// check only fires when the store changed underneath us, so it names
	// the whole key set.
	if endpoint == "" || apiKey == "" || deployment == "" {
		return nil, fmt.Errorf("Azure OpenAI is %w. Please set AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY, and AZURE_OPENAI_DEPLOYMENT", ErrProviderNotConfigured)
	}

	payload := azurePayload{
		Messages:         req.Messages,
		Temperature:      req.Settings.Temperature,
		MaxTokens:        req.Settings.MaxTokens,
		TopP:             req.Settings.TopP,
		PresencePenalty:  req.Settings.PresencePenalty,
		FrequencyPenalty: req.Settings.FrequencyPenalty,
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(endpoint, "/"), deployment, azureAPIVersion)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := postJSON(ctx, a.client, "Azure OpenAI", url, payload, map[string]string{
		"api-key": apiKey,
	})
	if err != nil {
		return nil, classifyTransportError("Azure OpenAI", err)
	}
	if upErr := body.err; upErr != nil {
		return nil, upErr
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body.raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode azure openai response: %w", err)
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
