package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicAssess(t *testing.T) {
	var gotReq anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("x-api-key"); key != "test-key" {
			t.Errorf("x-api-key = %q", key)
		}
		if v := r.Header.Get("anthropic-version"); v != "2023-06-01" {
			t.Errorf("anthropic-version = %q", v)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: `{"overall`},
				{Type: "text", Text: `_score": 8}`},
			},
			Usage: anthropicUsage{InputTokens: 100, OutputTokens: 50},
		})
	}))
	defer server.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("AUDEX_ANTHROPIC_BASE_URL", server.URL)

	p, err := NewAnthropic("claude-3-5-haiku-latest")
	if err != nil {
		t.Fatalf("NewAnthropic: %v", err)
	}

	resp, err := p.Assess(context.Background(), AssessRequest{
		SystemPrompt: "sys",
		UserPrompt:   "user",
		MaxTokens:    1000,
	})
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}

	if resp.Content != `{"overall_score": 8}` {
		t.Errorf("Content = %q (text blocks not concatenated?)", resp.Content)
	}
	if resp.TokensUsed != 150 {
		t.Errorf("TokensUsed = %d, want 150", resp.TokensUsed)
	}
	if gotReq.System != "sys" {
		t.Errorf("request system = %q", gotReq.System)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestNewAnthropicRequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropic("claude-3-5-haiku-latest"); err == nil {
		t.Error("expected error when ANTHROPIC_API_KEY is unset")
	}
}

func TestNewUnknownProvider(t *testing.T) {
	if _, err := New("watson", "m"); err == nil {
		t.Error("expected error for unknown provider")
	}
}
