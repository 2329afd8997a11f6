package providers

import (
	"context"
	"encoding/json"
	"time"
)

// LLMClient is the interface for schema-constrained generation requests.
type LLMClient interface {
	// Generate sends a single generation request. At most one network
	// round trip is made unless the client was configured with retries.
	Generate(ctx context.Context, req *Request) (*Result, error)

	// Name returns the client identifier (e.g., "gemini").
	Name() string
}

// Request is a generation request to an LLM.
type Request struct {
	// Prompt content
	SystemInstruction string `json:"system_instruction"`
	UserPrompt        string `json:"user_prompt"`

	// Structured output contract, in the canonical
	// {"type":"json_schema","json_schema":{...}} wrapper. Clients adapt
	// it to their provider's schema dialect.
	ResponseSchema map[string]any `json:"response_schema,omitempty"`

	// Model selection (uses client default if empty)
	Model string `json:"model,omitempty"`

	// Generation parameters
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Timeout     time.Duration

	// Request tracking
	RequestID string `json:"-"`
}

// Result is the complete response from a generation call.
type Result struct {
	// Response content
	Content    string          `json:"content"`
	ParsedJSON json.RawMessage `json:"parsed_json,omitempty"` // Parsed if ResponseSchema was set

	// Token counts
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// Timing
	ExecutionTime time.Duration `json:"execution_time"`
	TotalTime     time.Duration `json:"total_time"`

	// Provider info
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Request tracking
	RequestID string `json:"request_id"`
	Attempts  int    `json:"attempts"`

	// Success/error
	Success      bool   `json:"success"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
