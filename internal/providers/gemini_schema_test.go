package providers

import "testing"

func TestToGeminiSchema(t *testing.T) {
	wrapped := map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "thing",
			"strict": true,
			"schema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"items": map[string]any{
						"type":     "array",
						"minItems": 3,
						"maxItems": 5,
						"items":    map[string]any{"type": "string"},
					},
					"count": map[string]any{"type": "integer"},
				},
				"required":             []string{"items", "count"},
				"additionalProperties": false,
			},
		},
	}

	got := toGeminiSchema(wrapped)
	if got == nil {
		t.Fatal("toGeminiSchema() = nil")
	}

	if got["type"] != "OBJECT" {
		t.Errorf("root type = %v, want OBJECT", got["type"])
	}
	if _, present := got["additionalProperties"]; present {
		t.Error("additionalProperties not stripped")
	}

	props := got["properties"].(map[string]any)
	list := props["items"].(map[string]any)
	if list["type"] != "ARRAY" {
		t.Errorf("array type = %v, want ARRAY", list["type"])
	}
	if list["minItems"] != 3 || list["maxItems"] != 5 {
		t.Errorf("item bounds dropped: %v..%v", list["minItems"], list["maxItems"])
	}
	inner := list["items"].(map[string]any)
	if inner["type"] != "STRING" {
		t.Errorf("inner type = %v, want STRING", inner["type"])
	}
	if props["count"].(map[string]any)["type"] != "INTEGER" {
		t.Error("integer type not converted")
	}

	required := got["required"].([]string)
	if len(required) != 2 {
		t.Errorf("required = %v", required)
	}
}

func TestToGeminiSchemaRawDocument(t *testing.T) {
	got := toGeminiSchema(map[string]any{"type": "object"})
	if got["type"] != "OBJECT" {
		t.Errorf("type = %v, want OBJECT", got["type"])
	}
}
