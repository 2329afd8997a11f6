package lessonplan

import "testing"

func unwrapSchema(t *testing.T, wrapped map[string]any) map[string]any {
	t.Helper()
	if wrapped["type"] != "json_schema" {
		t.Fatalf("wrapper type = %v, want json_schema", wrapped["type"])
	}
	js, ok := wrapped["json_schema"].(map[string]any)
	if !ok {
		t.Fatal("json_schema wrapper missing")
	}
	if js["name"] != "lesson_plan" {
		t.Errorf("schema name = %v, want lesson_plan", js["name"])
	}
	if js["strict"] != true {
		t.Error("schema not marked strict")
	}
	schema, ok := js["schema"].(map[string]any)
	if !ok {
		t.Fatal("inner schema missing")
	}
	return schema
}

func dayItemSchema(t *testing.T, schema map[string]any) map[string]any {
	t.Helper()
	props := schema["properties"].(map[string]any)
	lp, ok := props["lessonPlan"].(map[string]any)
	if !ok {
		t.Fatal("lessonPlan property missing")
	}
	days := lp["properties"].(map[string]any)["days"].(map[string]any)
	items, ok := days["items"].(map[string]any)
	if !ok {
		t.Fatal("days items schema missing")
	}
	return items
}

func TestResponseSchemaTopLevelShape(t *testing.T) {
	schema := unwrapSchema(t, ResponseSchema(false))
	props := schema["properties"].(map[string]any)
	if _, ok := props["competency"]; !ok {
		t.Error("competency property missing")
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 2 {
		t.Fatalf("required = %v, want [lessonPlan competency]", schema["required"])
	}
	if required[0] != "lessonPlan" || required[1] != "competency" {
		t.Errorf("required = %v, want [lessonPlan competency]", required)
	}
	if schema["additionalProperties"] != false {
		t.Error("additionalProperties should be false at the top level")
	}
}

func TestResponseSchemaPlainObjectives(t *testing.T) {
	items := dayItemSchema(t, unwrapSchema(t, ResponseSchema(false)))
	props := items["properties"].(map[string]any)

	obj, ok := props["objectives"].(map[string]any)
	if !ok {
		t.Fatal("objectives property missing in plain mode")
	}
	if obj["minItems"] != 3 || obj["maxItems"] != 5 {
		t.Errorf("objectives bounds = %v..%v, want 3..5", obj["minItems"], obj["maxItems"])
	}
	if _, ok := props["soloObjectives"]; ok {
		t.Error("soloObjectives present in plain mode")
	}
	if _, ok := props["hotsObjectives"]; ok {
		t.Error("hotsObjectives present in plain mode")
	}

	required := items["required"].([]string)
	want := map[string]bool{"day": true, "sections": true, "objectives": true}
	if len(required) != len(want) {
		t.Fatalf("day required = %v", required)
	}
	for _, r := range required {
		if !want[r] {
			t.Errorf("unexpected required field %q", r)
		}
	}
}

func TestResponseSchemaIntegratedObjectives(t *testing.T) {
	items := dayItemSchema(t, unwrapSchema(t, ResponseSchema(true)))
	props := items["properties"].(map[string]any)

	solo, ok := props["soloObjectives"].(map[string]any)
	if !ok {
		t.Fatal("soloObjectives property missing in integrated mode")
	}
	if solo["minItems"] != 4 || solo["maxItems"] != 4 {
		t.Errorf("soloObjectives bounds = %v..%v, want exactly 4", solo["minItems"], solo["maxItems"])
	}
	hots, ok := props["hotsObjectives"].(map[string]any)
	if !ok {
		t.Fatal("hotsObjectives property missing in integrated mode")
	}
	if hots["minItems"] != 6 || hots["maxItems"] != 6 {
		t.Errorf("hotsObjectives bounds = %v..%v, want exactly 6", hots["minItems"], hots["maxItems"])
	}
	if _, ok := props["objectives"]; ok {
		t.Error("plain objectives present in integrated mode")
	}
}

func TestResponseSchemaSectionShape(t *testing.T) {
	items := dayItemSchema(t, unwrapSchema(t, ResponseSchema(false)))
	sections := items["properties"].(map[string]any)["sections"].(map[string]any)
	if sections["minItems"] != 10 || sections["maxItems"] != 10 {
		t.Errorf("sections bounds = %v..%v, want exactly 10", sections["minItems"], sections["maxItems"])
	}
	sectionItems := sections["items"].(map[string]any)
	props := sectionItems["properties"].(map[string]any)
	for _, field := range []string{"id", "title", "content"} {
		if _, ok := props[field]; !ok {
			t.Errorf("section property %q missing", field)
		}
	}
	if sectionItems["additionalProperties"] != false {
		t.Error("section schema should forbid extra properties")
	}
}
