package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func geminiTestResponse(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
		"usageMetadata": map[string]any{
			"promptTokenCount":     120,
			"candidatesTokenCount": 80,
			"totalTokenCount":      200,
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGeminiGenerate(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, geminiTestResponse("plain text answer"))
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})

	result, err := client.Generate(context.Background(), &Request{
		SystemInstruction: "you are a planner",
		UserPrompt:        "make a plan",
		Temperature:       0.7,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if gotPath != "/models/"+DefaultGeminiModel+":generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("api key header = %q", gotAPIKey)
	}

	var body geminiRequest
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	if body.SystemInstruction == nil || body.SystemInstruction.Parts[0].Text != "you are a planner" {
		t.Error("system instruction not sent")
	}
	if len(body.Contents) != 1 || body.Contents[0].Parts[0].Text != "make a plan" {
		t.Error("user prompt not sent")
	}
	if body.GenerationConfig.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", body.GenerationConfig.Temperature)
	}

	if !result.Success {
		t.Fatalf("result not successful: %s", result.ErrorMessage)
	}
	if result.Content != "plain text answer" {
		t.Errorf("content = %q", result.Content)
	}
	if result.PromptTokens != 120 || result.CompletionTokens != 80 || result.TotalTokens != 200 {
		t.Errorf("token counts = %d/%d/%d", result.PromptTokens, result.CompletionTokens, result.TotalTokens)
	}
	if result.Provider != GeminiName {
		t.Errorf("provider = %q", result.Provider)
	}
}

func TestGeminiGenerateStructured(t *testing.T) {
	schema := map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "answer",
			"strict": true,
			"schema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"answer": map[string]any{"type": "string"},
				},
				"required":             []string{"answer"},
				"additionalProperties": false,
			},
		},
	}

	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, geminiTestResponse(`{"answer":"42"}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	result, err := client.Generate(context.Background(), &Request{
		UserPrompt:     "answer me",
		ResponseSchema: schema,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	body := string(gotBody)
	if !strings.Contains(body, `"responseMimeType":"application/json"`) {
		t.Error("JSON response mime type not requested")
	}
	if !strings.Contains(body, `"OBJECT"`) || !strings.Contains(body, `"STRING"`) {
		t.Error("schema types not converted to Gemini dialect")
	}
	if strings.Contains(body, "additionalProperties") {
		t.Error("additionalProperties should be stripped from Gemini schema")
	}

	if !result.Success {
		t.Fatalf("result not successful: %s", result.ErrorMessage)
	}
	if string(result.ParsedJSON) != `{"answer":"42"}` {
		t.Errorf("parsed JSON = %s", result.ParsedJSON)
	}
}

func TestGeminiGenerateFencedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, geminiTestResponse("```json\n{\"answer\":\"ok\"}\n```"))
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	result, err := client.Generate(context.Background(), &Request{
		UserPrompt: "answer me",
		ResponseSchema: map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "answer",
				"schema": map[string]any{"type": "object"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("result not successful: %s", result.ErrorMessage)
	}
	if string(result.ParsedJSON) != `{"answer":"ok"}` {
		t.Errorf("parsed JSON = %s", result.ParsedJSON)
	}
}

func TestGeminiGenerateSchemaViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, geminiTestResponse(`{"wrong":"shape"}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	result, err := client.Generate(context.Background(), &Request{
		UserPrompt: "answer me",
		ResponseSchema: map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name": "answer",
				"schema": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"answer": map[string]any{"type": "string"},
					},
					"required":             []string{"answer"},
					"additionalProperties": false,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Success {
		t.Fatal("expected validation failure")
	}
	if result.ErrorType != "schema_validation" {
		t.Errorf("error type = %q, want schema_validation", result.ErrorType)
	}
}

func TestGeminiNoRetryByDefault(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	result, err := client.Generate(context.Background(), &Request{UserPrompt: "hi"})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (retries off by default)", requests)
	}
	if result.Success {
		t.Error("result should not be successful")
	}
	if result.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", result.Attempts)
	}
}

func TestGeminiRetriesWhenConfigured(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		io.WriteString(w, geminiTestResponse("recovered"))
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{
		APIKey:      "k",
		BaseURL:     srv.URL,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})
	result, err := client.Generate(context.Background(), &Request{UserPrompt: "hi"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if requests != 3 {
		t.Errorf("requests = %d, want 3", requests)
	}
	if result.Content != "recovered" {
		t.Errorf("content = %q", result.Content)
	}
	if result.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", result.Attempts)
	}
}

func TestGeminiNonRetryableStatus(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"bad request"}}`)
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{
		APIKey:      "k",
		BaseURL:     srv.URL,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})
	if _, err := client.Generate(context.Background(), &Request{UserPrompt: "hi"}); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (400 is not retryable)", requests)
	}
}
