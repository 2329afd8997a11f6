package providers

import "strings"

// geminiTypeNames maps JSON schema type names to the uppercase enum the
// Gemini API expects.
var geminiTypeNames = map[string]string{
	"object":  "OBJECT",
	"array":   "ARRAY",
	"string":  "STRING",
	"integer": "INTEGER",
	"number":  "NUMBER",
	"boolean": "BOOLEAN",
	"null":    "NULL",
}

// geminiDroppedKeywords are schema keywords the Gemini responseSchema
// dialect rejects. They still apply during local validation against the
// canonical schema.
var geminiDroppedKeywords = map[string]struct{}{
	"additionalProperties": {},
	"$schema":              {},
	"$id":                  {},
	"strict":               {},
}

// toGeminiSchema converts a canonical json_schema wrapper (or raw schema
// document) into the Gemini responseSchema dialect.
func toGeminiSchema(wrapped map[string]any) map[string]any {
	node := any(wrapped)
	if inner, ok := wrapped["json_schema"].(map[string]any); ok {
		if schema, ok := inner["schema"]; ok {
			node = schema
		}
	}

	converted, ok := convertGeminiNode(node).(map[string]any)
	if !ok {
		return nil
	}
	return converted
}

func convertGeminiNode(node any) any {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for key, value := range n {
			if _, drop := geminiDroppedKeywords[key]; drop {
				continue
			}
			switch key {
			case "type":
				if s, ok := value.(string); ok {
					if upper, known := geminiTypeNames[strings.ToLower(s)]; known {
						out[key] = upper
						continue
					}
				}
				out[key] = value
			case "properties":
				props, ok := value.(map[string]any)
				if !ok {
					out[key] = value
					continue
				}
				converted := make(map[string]any, len(props))
				for name, prop := range props {
					converted[name] = convertGeminiNode(prop)
				}
				out[key] = converted
			default:
				out[key] = convertGeminiNode(value)
			}
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = convertGeminiNode(v)
		}
		return out
	default:
		return node
	}
}
