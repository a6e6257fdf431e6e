package providers

// ID identifies a supported provider.
type ID string

const (
	IDOpenAI      ID = "openai"
	IDAnthropic   ID = "anthropic"
	IDAzureOpenAI ID = "azure-openai"
	IDOllama      ID = "ollama"
)

// Model describes a single model exposed by a provider.
type Model struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Description   string   `json:"description,omitempty"`
	ContextWindow int      `json:"contextWindow,omitempty"`
	Capabilities  []string `json:"capabilities,omitempty"`
}

// Descriptor is the design-time identity of a provider: its display
// metadata, models, and the environment variables it needs. Descriptors are
// created once at startup and never mutated.
type Descriptor struct {
	ID           ID       `json:"id"`
	Label        string   `json:"label"`
	Badge        string   `json:"badge,omitempty"`
	Description  string   `json:"description"`
	Link         string   `json:"link"`
	Models       []Model  `json:"models"`
	Env          []string `json:"env,omitempty"`
	DefaultModel string   `json:"defaultModel"`
}

// Availability is a Descriptor annotated with its derived enabled state.
// Enabled is true iff every required environment variable has a non-empty
// value; DisabledReason lists exactly the missing variables otherwise.
type Availability struct {
	Descriptor
	Enabled        bool   `json:"enabled"`
	DisabledReason string `json:"disabledReason,omitempty"`
}
