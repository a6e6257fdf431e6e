package chat

import (
	"net/http"
	"time"

	"github.com/gaugelab/gaugechat/internal/config"
	"github.com/gaugelab/gaugechat/internal/providers"
)

// NewAdapters wires one adapter per catalogued provider over a shared HTTP
// client. The configured timeout override applies to the hosted adapters
// only; Ollama stays unbounded.
func NewAdapters(cfg config.ChatConfig, store config.Store, client *http.Client) map[providers.ID]Adapter {
	if client == nil {
		client = NewHTTPClient()
	}

	openai := NewOpenAIAdapter(store, client)
	anthropic := NewAnthropicAdapter(store, client)
	azure := NewAzureOpenAIAdapter(store, client)

	if cfg.TimeoutSeconds > 0 {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		openai.timeout = timeout
		anthropic.timeout = timeout
		azure.timeout = timeout
	}

	return map[providers.ID]Adapter{
		providers.IDOpenAI:      openai,
		providers.IDAnthropic:   anthropic,
		providers.IDAzureOpenAI: azure,
		providers.IDOllama:      NewOllamaAdapter(store, client),
	}
}
