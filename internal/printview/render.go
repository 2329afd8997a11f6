// Package printview renders the DepEd Daily Lesson Log as a printable
// HTML page, one landscape page per day.
package printview

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jpsantiago/aralplan/internal/plan"
	"github.com/jpsantiago/aralplan/internal/types"
)

//go:embed page.tmpl
var pageTmpl string

var pageTemplate = template.Must(template.New("print").Parse(pageTmpl))

// procedureLabels are the DLL print labels for sections A-J. They differ
// slightly from the section titles used during generation.
var procedureLabels = map[string]string{
	"A": "A. Reviewing previous lesson or presenting the new lesson",
	"B": "B. Establishing a purpose for the lesson",
	"C": "C. Presenting examples/instances of the new lesson",
	"D": "D. Discussing new concepts and practicing new skills #1",
	"E": "E. Discussing new concepts and practicing new skills #2",
	"F": "F. Developing mastery (leads to Formative Assessment 3)",
	"G": "G. Finding practical applications of concepts and skills in daily living",
	"H": "H. Making generalizations and abstractions about the lesson",
	"I": "I. Evaluating learning",
	"J": "J. Additional activities for application or remediation",
}

// ProcedureLabel returns the DLL print label for a section id.
func ProcedureLabel(id string) string {
	if label, ok := procedureLabels[id]; ok {
		return label
	}
	return id
}

type procedureRow struct {
	Label   string
	Content string
}

type dayView struct {
	Day        int
	Week       int
	Objectives []string
	Procedures []procedureRow
}

type pageData struct {
	Info       types.PrintInfo
	Competency string
	Days       []dayView
}

// Render writes the printable HTML document for the given plan. Missing
// sections render as "N/A" so the table shape is always complete.
func Render(w io.Writer, data *types.GeneratedData, info types.PrintInfo) error {
	page := pageData{
		Info:       info,
		Competency: data.Competency,
		Days:       make([]dayView, 0, len(data.LessonPlan.Days)),
	}

	for i, day := range data.LessonPlan.Days {
		view := dayView{
			Day:  day.Day,
			Week: plan.WeekOf(i),
		}
		view.Objectives = append(view.Objectives, day.Objectives...)
		view.Objectives = append(view.Objectives, day.SoloObjectives...)
		view.Objectives = append(view.Objectives, day.HotsObjectives...)

		for _, id := range types.SectionIDs {
			content := "N/A"
			if section, ok := day.Section(id); ok {
				content = section.Content
			}
			view.Procedures = append(view.Procedures, procedureRow{
				Label:   ProcedureLabel(id),
				Content: content,
			})
		}
		page.Days = append(page.Days, view)
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render print view: %w", err)
	}
	return nil
}
