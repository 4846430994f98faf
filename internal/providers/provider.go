package providers

import (
	"context"
	"fmt"
)

// AssessRequest contains the data sent to an LLM for a code audit.
type AssessRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
	// ForceJSON asks the provider to constrain output to a JSON object,
	// where the API supports a response-format directive. Providers without
	// one rely on the schema mandated in the system prompt.
	ForceJSON bool
}

// AssessResponse contains the raw response from an LLM.
type AssessResponse struct {
	Content    string
	TokensUsed int
}

// Assessor is the provider abstraction interface.
type Assessor interface {
	Assess(ctx context.Context, req AssessRequest) (AssessResponse, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model string) (Assessor, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "gemini", "google":
		return NewGemini(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
