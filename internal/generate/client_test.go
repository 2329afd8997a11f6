package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jpsantiago/aralplan/internal/providers"
	"github.com/jpsantiago/aralplan/internal/types"
)

func validPlanJSON(t *testing.T, days int) json.RawMessage {
	t.Helper()
	plan := map[string]any{"days": []any{}}
	for d := 1; d <= days; d++ {
		sections := make([]any, 0, len(types.SectionIDs))
		for _, id := range types.SectionIDs {
			sections = append(sections, map[string]any{
				"id":      id,
				"title":   types.SectionTitle(id),
				"content": fmt.Sprintf("Day %d content for section %s.", d, id),
			})
		}
		plan["days"] = append(plan["days"].([]any), map[string]any{
			"day":        d,
			"objectives": []any{"Identify key events", "Explain their causes", "Assess their impact"},
			"sections":   sections,
		})
	}
	b, err := json.Marshal(map[string]any{
		"lessonPlan": plan,
		"competency": "Analyze primary sources",
	})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return b
}

func TestGenerateSuccess(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = validPlanJSON(t, 2)

	client := New(mock)
	data, err := client.Generate(context.Background(), Request{
		Competency:   "Analyze primary sources",
		NumberOfDays: 2,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if data.Competency != "Analyze primary sources" {
		t.Errorf("competency = %q", data.Competency)
	}
	if len(data.LessonPlan.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(data.LessonPlan.Days))
	}
	if len(data.LessonPlan.Days[0].Sections) != 10 {
		t.Errorf("sections = %d, want 10", len(data.LessonPlan.Days[0].Sections))
	}
}

func TestGenerateValidationBeforeNetwork(t *testing.T) {
	mock := providers.NewMockClient()
	client := New(mock)

	_, err := client.Generate(context.Background(), Request{Competency: "   "})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if mock.RequestCount() != 0 {
		t.Errorf("requests = %d, want 0 (no network call on validation failure)", mock.RequestCount())
	}
}

func TestGeneratePDFTextAloneIsEnough(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = validPlanJSON(t, 1)

	client := New(mock)
	if _, err := client.Generate(context.Background(), Request{PDFText: "reference text"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mock.RequestCount() != 1 {
		t.Errorf("requests = %d, want 1", mock.RequestCount())
	}
}

func TestGenerateTransportError(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ShouldFail = true

	client := New(mock)
	_, err := client.Generate(context.Background(), Request{Competency: "x"})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"missing lessonPlan", `{"competency":"x"}`},
		{"missing days", `{"lessonPlan":{},"competency":"x"}`},
		{"empty days", `{"lessonPlan":{"days":[]},"competency":"x"}`},
		{"missing competency", `{"lessonPlan":{"days":[{"day":1,"objectives":[],"sections":[]}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := providers.NewMockClient()
			mock.ResponseJSON = json.RawMessage(tc.json)
			mock.SkipValidation = true

			client := New(mock)
			_, err := client.Generate(context.Background(), Request{Competency: "x"})
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestGeneratePromptContents(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = validPlanJSON(t, 3)

	client := New(mock)
	_, err := client.Generate(context.Background(), Request{
		Competency:          "Explain the causes of the revolution",
		NumberOfDays:        3,
		Language:            "Filipino",
		PDFText:             "The Katipunan was founded in 1892.",
		IntegrateObjectives: true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := mock.LastRequest()
	if req == nil {
		t.Fatal("no request captured")
	}
	if !strings.Contains(req.UserPrompt, `"Explain the causes of the revolution"`) {
		t.Error("competency missing from user prompt")
	}
	if !strings.Contains(req.UserPrompt, "3-day lesson plan") {
		t.Error("day count missing from user prompt")
	}
	if !strings.Contains(req.UserPrompt, "Filipino") {
		t.Error("language missing from user prompt")
	}
	if !strings.Contains(req.UserPrompt, "The Katipunan was founded in 1892.") {
		t.Error("reference text missing from user prompt")
	}
	if !strings.Contains(req.SystemInstruction, "SOLO Taxonomy") {
		t.Error("taxonomy instruction missing from system prompt")
	}
	if req.ResponseSchema == nil {
		t.Error("response schema not attached")
	}
	if req.Temperature != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, DefaultTemperature)
	}
}

func TestGenerateDefaults(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = validPlanJSON(t, 1)

	client := New(mock)
	if _, err := client.Generate(context.Background(), Request{Competency: "x", NumberOfDays: 0}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := mock.LastRequest()
	if !strings.Contains(req.UserPrompt, "1-day lesson plan") {
		t.Error("day count should default to 1")
	}
	if !strings.Contains(req.UserPrompt, "English") {
		t.Error("language should default to English")
	}
}
