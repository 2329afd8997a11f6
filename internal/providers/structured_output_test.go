package providers

import (
	"strings"
	"testing"
)

func TestParseStructuredJSONPlain(t *testing.T) {
	parsed, err := parseStructuredJSON(`{"a":1}`)
	if err != nil {
		t.Fatalf("parseStructuredJSON() error = %v", err)
	}
	if string(parsed) != `{"a":1}` {
		t.Errorf("parsed = %s", parsed)
	}
}

func TestParseStructuredJSONCodeFence(t *testing.T) {
	parsed, err := parseStructuredJSON("```json\n{\"a\": 1}\n```")
	if err != nil {
		t.Fatalf("parseStructuredJSON() error = %v", err)
	}
	if string(parsed) != `{"a":1}` {
		t.Errorf("parsed = %s", parsed)
	}
}

func TestParseStructuredJSONSurroundingProse(t *testing.T) {
	parsed, err := parseStructuredJSON("Here is the plan:\n{\"a\": 1}\nHope that helps!")
	if err != nil {
		t.Fatalf("parseStructuredJSON() error = %v", err)
	}
	if string(parsed) != `{"a":1}` {
		t.Errorf("parsed = %s", parsed)
	}
}

func TestParseStructuredJSONFailure(t *testing.T) {
	if _, err := parseStructuredJSON("not json at all"); err == nil {
		t.Error("expected error for non-JSON content")
	}
	if _, err := parseStructuredJSON(""); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestValidationSchemaUnwrapsWrapper(t *testing.T) {
	wrapped := map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "thing",
			"strict": true,
			"schema": map[string]any{"type": "object"},
		},
	}
	core, err := validationSchema(wrapped)
	if err != nil {
		t.Fatalf("validationSchema() error = %v", err)
	}
	if string(core) != `{"type":"object"}` {
		t.Errorf("core schema = %s", core)
	}
}

func TestValidationSchemaRawDocument(t *testing.T) {
	core, err := validationSchema(map[string]any{"type": "object"})
	if err != nil {
		t.Fatalf("validationSchema() error = %v", err)
	}
	if string(core) != `{"type":"object"}` {
		t.Errorf("core schema = %s", core)
	}
}

func TestSchemaName(t *testing.T) {
	wrapped := map[string]any{
		"json_schema": map[string]any{"name": "lesson_plan"},
	}
	if got := schemaName(wrapped); got != "lesson_plan" {
		t.Errorf("schemaName() = %q", got)
	}
	if got := schemaName(map[string]any{}); got != "response" {
		t.Errorf("schemaName() fallback = %q", got)
	}
}

func TestValidateStructuredJSON(t *testing.T) {
	wrapped := map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name": "thing",
			"schema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"count": map[string]any{"type": "integer"},
				},
				"required":             []string{"count"},
				"additionalProperties": false,
			},
		},
	}

	if err := validateStructuredJSON(wrapped, []byte(`{"count":3}`)); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	err := validateStructuredJSON(wrapped, []byte(`{"count":"three"}`))
	if err == nil {
		t.Fatal("expected validation error for wrong type")
	}
	if !strings.Contains(err.Error(), "does not match schema") {
		t.Errorf("unexpected error text: %v", err)
	}

	if err := validateStructuredJSON(wrapped, []byte(`{"extra":true,"count":1}`)); err == nil {
		t.Error("expected validation error for extra property")
	}
}

func TestStripCodeFences(t *testing.T) {
	if got := stripCodeFences("no fences"); got != "" {
		t.Errorf("stripCodeFences() = %q, want empty for unfenced input", got)
	}
	if got := stripCodeFences("```json\n{}\n```"); got != "{}" {
		t.Errorf("stripCodeFences() = %q", got)
	}
	// Missing trailing fence still strips the opener.
	if got := stripCodeFences("```\n{}"); got != "{}" {
		t.Errorf("stripCodeFences() = %q", got)
	}
}
