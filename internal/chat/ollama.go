package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gaugelab/gaugechat/internal/config"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaAdapter speaks the local Ollama chat protocol. It reads
// OLLAMA_API_URL from the store on every call, falling back to the local
// default. Local model runs can take arbitrarily long, so unlike the hosted
// adapters it enforces no wall-clock budget.
type OllamaAdapter struct {
	store  config.Store
	client *http.Client
}

func NewOllamaAdapter(store config.Store, client *http.Client) *OllamaAdapter {
	if client == nil {
		client = NewHTTPClient()
	}
	return &OllamaAdapter{store: store, client: client}
}

type ollamaOptions struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	NumPredict       int     `json:"num_predict,omitempty"`
	PresencePenalty  float64 `json:"presence_penalty"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
}

type ollamaPayload struct {
	Model    string        `json:"model"`
	Options  ollamaOptions `json:"options"`
	Messages []Message     `json:"messages"`
}

type ollamaResponse struct {
	// Message is usually an object with a content field, but some builds
	// return an array of text parts.
	Message  json.RawMessage `json:"message"`
	Response string          `json:"response"`
}

func (a *OllamaAdapter) Chat(ctx context.Context, req Request) (*Result, error) {
	base := a.store.Get("OLLAMA_API_URL")
	if base == "" {
		base = defaultOllamaBaseURL
	}
	base = strings.TrimRight(base, "/")

	payload := ollamaPayload{
		Model: req.Settings.ModelID,
		Options: ollamaOptions{
			Temperature:      req.Settings.Temperature,
			TopP:             req.Settings.TopP,
			NumPredict:       req.Settings.MaxTokens,
			PresencePenalty:  req.Settings.PresencePenalty,
			FrequencyPenalty: req.Settings.FrequencyPenalty,
		},
		Messages: req.Messages,
	}

	body, err := postJSON(ctx, a.client, "Ollama", base+"/api/chat", payload, nil)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	if upErr := body.err; upErr != nil {
		return nil, upErr
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(body.raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}

	content := extractOllamaContent(parsed)

	// Ollama reports no token accounting; usage stays absent, not zeroed.
	return &Result{
		Message: Message{Role: RoleAssistant, Content: content},
		Raw:     body.raw,
	}, nil
}

func extractOllamaContent(resp ollamaResponse) string {
	if len(resp.Message) > 0 {
		// A present content field wins even when empty; Response is only
		// the fallback for responses without a message.
		var obj struct {
			Content *string `json:"content"`
		}
		if err := json.Unmarshal(resp.Message, &obj); err == nil && obj.Content != nil {
			return *obj.Content
		}

		var parts []struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(resp.Message, &parts); err == nil && len(parts) > 0 {
			texts := make([]string, len(parts))
			for i, p := range parts {
				texts[i] = p.Text
			}
			return strings.Join(texts, "\n")
		}
	}
	return resp.Response
}
