// Package providers implements the Assessor interface for each supported LLM
// provider.
//
// Supported providers: Anthropic (Claude), OpenAI (GPT), Google (Gemini), and
// Ollama / LM Studio for local models. OpenAI, Gemini, and the
// OpenAI-compatible local servers accept a JSON response-format directive;
// Anthropic relies on the schema in the system prompt alone.
//
// All providers share a common retry helper with exponential back-off. Rate
// limits and 5xx responses are retried; authentication errors are returned
// immediately and can be detected with [IsAuthError] for exit-code mapping.
// Base URLs are overridable through AUDEX_*_BASE_URL environment variables so
// tests can redirect calls to local httptest servers without making live API
// requests.
//
// Use [New] to obtain an Assessor by provider name and model string.
package providers
