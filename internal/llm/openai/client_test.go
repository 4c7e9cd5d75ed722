package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-assist/internal/llm"
)

func TestGenerateSendsSystemAndSamplingConfig(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"ok": true}`}},
			},
		})
	}))
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-3.5-turbo")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	out, err := client.Generate(context.Background(), llm.Request{
		System:          "stay on format",
		Prompt:          "analyze this",
		Temperature:     0.7,
		MaxOutputTokens: 3000,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != `{"ok": true}` {
		t.Fatalf("unexpected output: %q", out)
	}

	if captured.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model: %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
	if captured.Temperature == nil || *captured.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", captured.Temperature)
	}
	if captured.MaxTokens != 3000 {
		t.Fatalf("unexpected max_tokens: %d", captured.MaxTokens)
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited", "type": "rate_limit_error"},
		})
	}))
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-3.5-turbo")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Generate(context.Background(), llm.Request{Prompt: "hi"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGenerateRejectsEmptyContent(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  "}},
			},
		})
	}))
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-3.5-turbo")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Generate(context.Background(), llm.Request{Prompt: "hi"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewClientValidatesInputs(t *testing.T) {
	if _, err := NewClient("", "gpt-3.5-turbo"); err == nil {
		t.Fatalf("expected error for missing key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
