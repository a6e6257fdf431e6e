package providers

// catalog is the static set of supported providers. Order matters: it is the
// order providers are presented to callers and the order availability checks
// report missing environment variables.
var catalog = []Descriptor{
	{
		ID:          IDOpenAI,
		Label:       "OpenAI",
		Badge:       "Popular",
		Description: "GPT-4 family models with multimodal capabilities and high quality responses.",
		Link:        "https://platform.openai.com/",
		Models: []Model{
			{
				ID:            "gpt-4o-mini",
				Label:         "GPT-4o Mini",
				Description:   "Balanced for cost and quality, great default assistant.",
				ContextWindow: 128000,
			},
			{
				ID:            "gpt-4o",
				Label:         "GPT-4o",
				Description:   "Flagship GPT-4o model with advanced reasoning.",
				ContextWindow: 128000,
			},
			{
				ID:          "gpt-4.1-mini",
				Label:       "GPT-4.1 Mini",
				Description: "Updated GPT-4.1 mini with improved grounding.",
			},
			{
				ID:          "o4-mini",
				Label:       "o4 Mini",
				Description: "Reasoning optimized o-series model.",
			},
		},
		Env:          []string{"OPENAI_API_KEY"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:          IDAnthropic,
		Label:       "Anthropic",
		Badge:       "Safety",
		Description: "Claude 3 models ideal for long context and compliance heavy workloads.",
		Link:        "https://console.anthropic.com/",
		Models: []Model{
			{
				ID:            "claude-3-5-sonnet-20240620",
				Label:         "Claude 3.5 Sonnet",
				Description:   "Top-tier reasoning with tool use.",
				ContextWindow: 200000,
			},
			{
				ID:          "claude-3-5-haiku-20241022",
				Label:       "Claude 3.5 Haiku",
				Description: "Fast, lower-latency Claude with great quality.",
			},
			{
				ID:          "claude-3-opus-20240229",
				Label:       "Claude 3 Opus",
				Description: "High-end Claude for sophisticated narratives.",
			},
		},
		Env:          []string{"ANTHROPIC_API_KEY"},
		DefaultModel: "claude-3-5-sonnet-20240620",
	},
	{
		ID:          IDAzureOpenAI,
		Label:       "Azure OpenAI",
		Description: "Enterprise deployment of OpenAI models hosted on Azure with regional control.",
		Link:        "https://learn.microsoft.com/azure/ai-services/openai/",
		Models: []Model{
			{
				ID:          "gpt-4o",
				Label:       "GPT-4o (Azure Deployment)",
				Description: "Use your provisioned GPT-4o deployment.",
			},
			{
				ID:          "gpt-35-turbo",
				Label:       "GPT-3.5 Turbo",
				Description: "Legacy, cost-effective Azure deployment.",
			},
		},
		Env:          []string{"AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_API_KEY", "AZURE_OPENAI_DEPLOYMENT"},
		DefaultModel: "gpt-4o",
	},
	{
		ID:          IDOllama,
		Label:       "Ollama",
		Badge:       "Self-hosted",
		Description: "Run open-source models locally via Ollama with zero external dependency.",
		Link:        "https://ollama.com/",
		Models: []Model{
			{
				ID:          "llama3.1",
				Label:       "Llama 3.1",
				Description: "Meta's Llama 3.1 8B general assistant.",
			},
			{
				ID:          "mistral",
				Label:       "Mistral",
				Description: "Mistral 7B value focused.",
			},
			{
				ID:          "phi3",
				Label:       "Phi-3",
				Description: "Microsoft's Phi-3 mini for on-device inference.",
			},
		},
		DefaultModel: "llama3.1",
	},
}

// Catalog returns the ordered provider catalogue. The returned slice is a
// copy; descriptors themselves are shared and must be treated as read-only.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the descriptor for the given provider id.
func Lookup(id ID) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
