package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

const (
	GeminiName    = "gemini"
	GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	DefaultGeminiModel = "gemini-2.5-flash"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Timeout      time.Duration
	// MaxAttempts is the total attempt count. 1 means a single call with
	// no retries.
	MaxAttempts int
	RetryDelay  time.Duration
}

// GeminiClient implements LLMClient using the Gemini generateContent API.
type GeminiClient struct {
	apiKey       string
	baseURL      string
	defaultModel string
	client       *http.Client
	maxAttempts  int
	retryDelay   time.Duration
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = GeminiBaseURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultGeminiModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}

	return &GeminiClient{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		defaultModel: cfg.DefaultModel,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
	}
}

// Name returns the client identifier.
func (c *GeminiClient) Name() string {
	return GeminiName
}

// Generate sends a generateContent request.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	gReq := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature: req.Temperature,
		},
	}
	if req.SystemInstruction != "" {
		gReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}
	if req.MaxTokens > 0 {
		gReq.GenerationConfig.MaxOutputTokens = req.MaxTokens
	}
	if req.ResponseSchema != nil {
		gReq.GenerationConfig.ResponseMIMEType = "application/json"
		gReq.GenerationConfig.ResponseSchema = toGeminiSchema(req.ResponseSchema)
	}

	result := &Result{
		RequestID: requestID,
		Provider:  GeminiName,
		Attempts:  1,
	}

	attempts := 0
	gResp, err := retry.DoWithData(
		func() (*geminiResponse, error) {
			attempts++
			return c.doRequest(ctx, model, &gReq)
		},
		retry.Attempts(uint(c.maxAttempts)),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isRetryableGeminiError),
	)
	result.Attempts = attempts

	if err != nil {
		result.Success = false
		result.ErrorType = "http_error"
		result.ErrorMessage = err.Error()
		result.TotalTime = time.Since(start)
		return result, err
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		result.Success = false
		result.ErrorType = "empty_response"
		result.ErrorMessage = "no candidates in response"
		result.TotalTime = time.Since(start)
		return result, fmt.Errorf("no candidates in response")
	}

	content := ""
	for _, part := range gResp.Candidates[0].Content.Parts {
		content += part.Text
	}

	result.Success = true
	result.Content = content
	result.ModelUsed = model
	result.PromptTokens = gResp.UsageMetadata.PromptTokenCount
	result.CompletionTokens = gResp.UsageMetadata.CandidatesTokenCount
	result.TotalTokens = gResp.UsageMetadata.TotalTokenCount
	result.ExecutionTime = time.Since(start)
	result.TotalTime = result.ExecutionTime

	if req.ResponseSchema != nil && content != "" {
		parsed, pErr := parseStructuredJSON(content)
		if pErr != nil {
			result.Success = false
			result.ErrorType = "json_parse"
			result.ErrorMessage = pErr.Error()
			return result, nil
		}
		if vErr := validateStructuredJSON(req.ResponseSchema, parsed); vErr != nil {
			result.Success = false
			result.ErrorType = "schema_validation"
			result.ErrorMessage = vErr.Error()
			result.ParsedJSON = parsed
			return result, nil
		}
		result.ParsedJSON = parsed
	}

	return result, nil
}

// geminiStatusError carries the HTTP status so the retry predicate can
// distinguish transient from permanent failures.
type geminiStatusError struct {
	StatusCode int
	Body       string
}

func (e *geminiStatusError) Error() string {
	return fmt.Sprintf("Gemini error (status %d): %s", e.StatusCode, e.Body)
}

func isRetryableGeminiError(err error) bool {
	var statusErr *geminiStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= 500
	}
	// Network-level errors are retryable; context cancellation is not.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *GeminiClient) doRequest(ctx context.Context, model string, body *geminiRequest) (*geminiResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &geminiStatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var gResp geminiResponse
	if err := json.Unmarshal(respBody, &gResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &gResp, nil
}

// Gemini API types

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64        `json:"temperature"`
	MaxOutputTokens  int            `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Role  string       `json:"role"`
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Verify interface
var _ LLMClient = (*GeminiClient)(nil)
