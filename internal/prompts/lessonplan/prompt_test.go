package lessonplan

import (
	"strings"
	"testing"
)

func TestSystemPromptPlainObjectives(t *testing.T) {
	p := Params{Competency: "Analyze primary sources", NumberOfDays: 1, Language: "English"}
	out := SystemPrompt(p)
	if !strings.Contains(out, "three to five (3-5) specific, measurable, and clear learning objectives") {
		t.Error("plain objectives instruction missing")
	}
	if strings.Contains(out, "SOLO Taxonomy") || strings.Contains(out, "HOTS") {
		t.Error("taxonomy instructions should not appear in plain mode")
	}
}

func TestSystemPromptIntegratedObjectives(t *testing.T) {
	p := Params{Competency: "Analyze primary sources", NumberOfDays: 2, Language: "Filipino", IntegrateObjectives: true}
	out := SystemPrompt(p)
	if !strings.Contains(out, "SOLO Taxonomy") {
		t.Error("SOLO instruction missing in integrated mode")
	}
	if !strings.Contains(out, "(HOTS)") {
		t.Error("HOTS instruction missing in integrated mode")
	}
	if strings.Contains(out, "three to five (3-5)") {
		t.Error("plain objectives instruction should not appear in integrated mode")
	}
}

func TestSystemPromptDeriveCompetencyBranch(t *testing.T) {
	p := Params{NumberOfDays: 1, Language: "English", PDFText: "Chapter 3: The Propaganda Movement ..."}
	out := SystemPrompt(p)
	if !strings.Contains(out, "determine the most appropriate Most Essential Learning Competency") {
		t.Error("derive-competency instruction missing when only PDF text is provided")
	}
	if !strings.Contains(out, "primary source for examples") {
		t.Error("grounding instruction missing when PDF text is provided")
	}

	// With an explicit competency the derive branch must not fire.
	p.Competency = "Analyze primary sources"
	out = SystemPrompt(p)
	if strings.Contains(out, "determine the most appropriate") {
		t.Error("derive-competency instruction present despite explicit competency")
	}
	if !strings.Contains(out, "primary source for examples") {
		t.Error("grounding instruction should still appear alongside an explicit competency")
	}
}

func TestSystemPromptListsAllTenSections(t *testing.T) {
	out := SystemPrompt(Params{Competency: "x", NumberOfDays: 1, Language: "English"})
	for _, title := range []string{
		"A. Reviewing previous lesson or presenting the new lesson",
		"F. Developing mastery (Formative Assessment #3)",
		"I. Evaluating learning (Quiz/Test/Performance Task)",
		"J. Additional activities for applications",
	} {
		if !strings.Contains(out, title) {
			t.Errorf("section listing missing %q", title)
		}
	}
}

func TestUserPromptCompetencyBranch(t *testing.T) {
	p := Params{Competency: "Explain the causes of the revolution", NumberOfDays: 3, Language: "English"}
	out := UserPrompt(p)
	if !strings.Contains(out, `"Explain the causes of the revolution"`) {
		t.Error("competency not quoted in user prompt")
	}
	if !strings.Contains(out, "3-day lesson plan") {
		t.Error("day count missing from user prompt")
	}
	if strings.Contains(out, "REFERENCE MATERIAL") {
		t.Error("reference material block present without PDF text")
	}
}

func TestUserPromptPDFTextEmbedded(t *testing.T) {
	p := Params{NumberOfDays: 1, Language: "English", PDFText: "The Katipunan was founded in 1892."}
	out := UserPrompt(p)
	if !strings.Contains(out, "--- REFERENCE MATERIAL FROM UPLOADED PDF ---") {
		t.Error("reference material header missing")
	}
	if !strings.Contains(out, "The Katipunan was founded in 1892.") {
		t.Error("PDF text not embedded in user prompt")
	}
	if !strings.Contains(out, "--- END OF REFERENCE MATERIAL ---") {
		t.Error("reference material footer missing")
	}
	if !strings.Contains(out, "Analyze the following text") {
		t.Error("analyze-text framing missing when no competency is given")
	}
}

func TestParamsHasHelpers(t *testing.T) {
	if (Params{}).HasCompetency() {
		t.Error("HasCompetency() = true for empty params")
	}
	if !(Params{Competency: "x"}).HasCompetency() {
		t.Error("HasCompetency() = false for non-blank competency")
	}
	if (Params{Competency: "   "}).HasCompetency() {
		t.Error("HasCompetency() = true for whitespace competency")
	}
	if !(Params{PDFText: "text"}).HasPDF() {
		t.Error("HasPDF() = false for non-empty pdf text")
	}
}
