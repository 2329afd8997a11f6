package lessonplan

// ResponseSchema is the JSON schema the model response must conform to,
// in the {"type":"json_schema","json_schema":{...}} wrapper the providers
// attach as a structural constraint. The day-plan shape depends on the
// objectives mode: SOLO (4) + HOTS (6) lists when integrateObjectives is
// set, a single 3-5 item objectives list otherwise.
func ResponseSchema(integrateObjectives bool) map[string]any {
	dayProperties := map[string]any{
		"day": map[string]any{
			"type":        "integer",
			"description": "The day number for this lesson plan (e.g., 1, 2, 3).",
		},
		"sections": map[string]any{
			"type":        "array",
			"minItems":    10,
			"maxItems":    10,
			"description": "All ten DepEd sections A through J, in order.",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "The section letter (e.g., 'A', 'B').",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "The full title of the lesson plan section.",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "The detailed content for this section, including suggested activities, questions, or prompts. Should be 2-4 sentences.",
					},
				},
				"required":             []string{"id", "title", "content"},
				"additionalProperties": false,
			},
		},
	}
	dayRequired := []string{"day", "sections"}

	if integrateObjectives {
		dayProperties["soloObjectives"] = map[string]any{
			"type":        "array",
			"minItems":    4,
			"maxItems":    4,
			"items":       map[string]any{"type": "string"},
			"description": "4 learning objectives for this specific day based on SOLO Taxonomy, scaffolding towards the main competency: Unistructural, Multistructural, Relational, and Extended Abstract.",
		}
		dayProperties["hotsObjectives"] = map[string]any{
			"type":        "array",
			"minItems":    6,
			"maxItems":    6,
			"items":       map[string]any{"type": "string"},
			"description": "6 learning objectives for this specific day based on HOTS (Bloom's Taxonomy), scaffolding towards the main competency: Remembering, Understanding, Applying, Analyzing, Evaluating, and Creating.",
		}
		dayRequired = append(dayRequired, "soloObjectives", "hotsObjectives")
	} else {
		dayProperties["objectives"] = map[string]any{
			"type":        "array",
			"minItems":    3,
			"maxItems":    5,
			"items":       map[string]any{"type": "string"},
			"description": "A list of 3-5 general learning objectives for this specific day's lesson.",
		}
		dayRequired = append(dayRequired, "objectives")
	}

	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "lesson_plan",
			"strict": true,
			"schema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"lessonPlan": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"days": map[string]any{
								"type":        "array",
								"description": "An array of daily lesson plans, one for each day requested.",
								"items": map[string]any{
									"type":                 "object",
									"properties":           dayProperties,
									"required":             dayRequired,
									"additionalProperties": false,
								},
							},
						},
						"required":             []string{"days"},
						"additionalProperties": false,
					},
					"competency": map[string]any{
						"type":        "string",
						"description": "The Most Essential Learning Competency (MELC) used for this lesson plan. If a competency was not provided in the prompt, this should be the competency you derived from the reference material.",
					},
				},
				"required":             []string{"lessonPlan", "competency"},
				"additionalProperties": false,
			},
		},
	}
}
