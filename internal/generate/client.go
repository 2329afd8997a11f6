// Package generate turns form inputs into a complete lesson plan via a
// single schema-constrained model call.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jpsantiago/aralplan/internal/prompts/lessonplan"
	"github.com/jpsantiago/aralplan/internal/providers"
	"github.com/jpsantiago/aralplan/internal/types"
)

const (
	DefaultLanguage    = "English"
	DefaultDays        = 1
	DefaultTemperature = 0.7
)

// Request carries the form inputs for one generation.
type Request struct {
	Competency          string `json:"competency"`
	NumberOfDays        int    `json:"number_of_days"`
	Language            string `json:"language"`
	PDFText             string `json:"pdf_text,omitempty"`
	IntegrateObjectives bool   `json:"integrate_objectives"`
}

// Client orchestrates prompt building, the model call, and response
// decoding. It holds no plan state; that lives in the state store.
type Client struct {
	llm         providers.LLMClient
	model       string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

// WithMaxTokens caps the completion length. Zero means provider default.
func WithMaxTokens(n int) Option {
	return func(c *Client) { c.maxTokens = n }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a generation client backed by the given LLM client.
func New(llm providers.LLMClient, opts ...Option) *Client {
	c := &Client{
		llm:         llm,
		temperature: DefaultTemperature,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the name of the backing LLM client.
func (c *Client) Provider() string {
	return c.llm.Name()
}

// Generate runs one generation. It validates inputs before touching the
// network: a request with neither a competency nor reference text fails
// immediately.
func (c *Client) Generate(ctx context.Context, req Request) (*types.GeneratedData, error) {
	competency := strings.TrimSpace(req.Competency)
	if competency == "" && req.PDFText == "" {
		return nil, fmt.Errorf("%w: either a learning competency or reference text is required", ErrValidation)
	}

	days := req.NumberOfDays
	if days < 1 {
		days = DefaultDays
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = DefaultLanguage
	}

	params := lessonplan.Params{
		Competency:          competency,
		NumberOfDays:        days,
		Language:            language,
		PDFText:             req.PDFText,
		IntegrateObjectives: req.IntegrateObjectives,
	}

	llmReq := &providers.Request{
		SystemInstruction: lessonplan.SystemPrompt(params),
		UserPrompt:        lessonplan.UserPrompt(params),
		ResponseSchema:    lessonplan.ResponseSchema(req.IntegrateObjectives),
		Model:             c.model,
		Temperature:       c.temperature,
		MaxTokens:         c.maxTokens,
	}

	c.logger.Info("generating lesson plan",
		"provider", c.llm.Name(),
		"days", days,
		"language", language,
		"has_pdf_text", req.PDFText != "",
		"integrate_objectives", req.IntegrateObjectives)

	result, err := c.llm.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if !result.Success {
		switch result.ErrorType {
		case "json_parse", "schema_validation", "empty_response":
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, result.ErrorMessage)
		default:
			return nil, fmt.Errorf("%w: %s", ErrTransport, result.ErrorMessage)
		}
	}
	if len(result.ParsedJSON) == 0 {
		return nil, fmt.Errorf("%w: empty structured payload", ErrMalformedResponse)
	}

	var data types.GeneratedData
	if err := json.Unmarshal(result.ParsedJSON, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(data.LessonPlan.Days) == 0 {
		return nil, fmt.Errorf("%w: response has no lesson plan days", ErrMalformedResponse)
	}
	if strings.TrimSpace(data.Competency) == "" {
		return nil, fmt.Errorf("%w: response has no competency", ErrMalformedResponse)
	}

	c.logger.Info("lesson plan generated",
		"provider", result.Provider,
		"model", result.ModelUsed,
		"days", len(data.LessonPlan.Days),
		"prompt_tokens", result.PromptTokens,
		"completion_tokens", result.CompletionTokens,
		"duration", result.TotalTime)

	return &data, nil
}
