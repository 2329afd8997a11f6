package printview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpsantiago/aralplan/internal/types"
)

func renderTestData() *types.GeneratedData {
	return &types.GeneratedData{
		Competency: "Analyze primary sources",
		LessonPlan: types.LessonPlan{
			Days: []types.DayPlan{
				{
					Day:        1,
					Objectives: []string{"Identify events", "Explain causes"},
					Sections: []types.LessonPlanSection{
						{ID: "A", Title: "Review", Content: "Recall last week's lesson."},
						{ID: "I", Title: "Evaluate", Content: "Short quiz & discussion."},
					},
				},
			},
		},
	}
}

func renderTestInfo() types.PrintInfo {
	return types.PrintInfo{
		School:       "Rizal High School",
		Teacher:      "Maria Clara",
		GradeLevel:   "Grade 10",
		LearningArea: "Araling Panlipunan",
		Quarter:      "Second Quarter",
	}
}

func TestRenderHeaderFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, renderTestData(), renderTestInfo()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"DAILY LESSON LOG",
		"Rizal High School",
		"Maria Clara",
		"Grade 10",
		"Araling Panlipunan",
		"Second Quarter",
		"Week 1, Day 1",
		"DAY 1",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderStaticBoilerplate(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, renderTestData(), renderTestInfo()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"I. OBJECTIVES",
		"(Pamantayang Pangnilalaman) - From Curriculum Guide",
		"(Pamantayan sa Pagganap) - From Curriculum Guide",
		"(Mga Kasanayan sa Pagkatuto)",
		"II. CONTENT",
		"III. LEARNING RESOURCES",
		"1. Teacher's Guide pages",
		"4. Additional Materials from Learning Resource (LR) portal",
		"B. Other Learning Resources",
		"IV. PROCEDURES",
		"V. REMARKS",
		"VI. REFLECTION",
		"A. No. of learners who earned 80% in the evaluation",
		"G. What innovation or localized materials did I use/discover which I wish to share with other teachers?",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderProcedureLabels(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, renderTestData(), renderTestInfo()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()

	// Print labels, not the generation-time section titles.
	if !strings.Contains(html, "F. Developing mastery (leads to Formative Assessment 3)") {
		t.Error("F label missing or wrong")
	}
	if !strings.Contains(html, "J. Additional activities for application or remediation") {
		t.Error("J label missing or wrong")
	}
	if strings.Contains(html, "Formative Assessment #3") {
		t.Error("generation-time section title leaked into print view")
	}

	if !strings.Contains(html, "Recall last week&#39;s lesson.") {
		t.Error("section A content missing")
	}
	if !strings.Contains(html, "Short quiz &amp; discussion.") {
		t.Error("section I content not HTML-escaped")
	}
}

func TestRenderMissingSectionsFallBack(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, renderTestData(), renderTestInfo()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Only A and I have content; the other eight render as N/A.
	if got := strings.Count(buf.String(), ">N/A<"); got != 8 {
		t.Errorf("N/A count = %d, want 8", got)
	}
}

func TestRenderPagePerDay(t *testing.T) {
	data := renderTestData()
	data.LessonPlan.Days = append(data.LessonPlan.Days, types.DayPlan{
		Day:            6,
		SoloObjectives: []string{"solo"},
		HotsObjectives: []string{"hots"},
	})
	// Second entry is day index 5, so it falls in week 2.
	var buf bytes.Buffer
	if err := Render(&buf, data, renderTestInfo()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()

	if got := strings.Count(html, `class="print-page"`); got != 2 {
		t.Errorf("print pages = %d, want 2", got)
	}
	if !strings.Contains(html, "Week 2, Day 6") {
		t.Error("week computation wrong for second week")
	}
	if !strings.Contains(html, "<li>solo</li>") || !strings.Contains(html, "<li>hots</li>") {
		t.Error("taxonomy objectives missing from objectives list")
	}
}
