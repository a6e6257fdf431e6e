package chat

import "encoding/json"

// Role values accepted in chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Response format values carried in Settings.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxMessageChars is the per-message content cap. Longer content is silently
// truncated during normalization, never rejected.
const MaxMessageChars = 32000

// Message is a single chat turn in the internal wire shape shared by every
// adapter.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Settings carries the generation parameters selected by the caller. They
// pass through dispatch unchanged; adapters remap field names and ranges for
// their upstream where needed.
type Settings struct {
	ProviderID       string  `json:"providerId"`
	ModelID          string  `json:"modelId"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	PresencePenalty  float64 `json:"presencePenalty"`
	FrequencyPenalty float64 `json:"frequencyPenalty"`
	MaxTokens        int     `json:"maxTokens"`
	SystemPrompt     string  `json:"systemPrompt"`
	ResponseFormat   string  `json:"responseFormat"`
}

// Request is an inbound chat completion request. It must pass through
// Normalize before dispatch.
type Request struct {
	Messages []Message `json:"messages"`
	Settings Settings  `json:"settings"`
}

// Usage reports upstream token accounting. Not every provider returns it,
// so the Result carries a nil Usage when the upstream stayed silent.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Result is the normalized chat completion shape returned by every adapter.
// Raw holds the upstream payload verbatim for diagnostics; callers must not
// depend on its structure.
type Result struct {
	Message Message         `json:"message"`
	Usage   *Usage          `json:"usage,omitempty"`
	Raw     json.RawMessage `json:"raw,omitempty"`
}
