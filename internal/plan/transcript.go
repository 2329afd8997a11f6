package plan

import (
	"fmt"
	"strings"

	"github.com/jpsantiago/aralplan/internal/types"
)

// Transcript serializes a lesson plan and its competency into a flat
// plain-text form suitable for the clipboard. The output is deterministic
// and whitespace-exact: the competency header, then each day block joined
// with a blank line, day order preserved.
func Transcript(p types.LessonPlan, competency string) string {
	var sb strings.Builder
	sb.WriteString("Learning Competency: ")
	sb.WriteString(competency)
	sb.WriteString("\n\n")

	blocks := make([]string, 0, len(p.Days))
	for _, day := range p.Days {
		blocks = append(blocks, dayBlock(day))
	}
	sb.WriteString(strings.Join(blocks, "\n\n"))

	return sb.String()
}

func dayBlock(day types.DayPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- DAY %d ---\n\n", day.Day)

	writeList(&sb, "SOLO Objectives", day.SoloObjectives)
	writeList(&sb, "HOTS Objectives", day.HotsObjectives)
	writeList(&sb, "Learning Objectives", day.Objectives)

	sections := make([]string, 0, len(day.Sections))
	for _, s := range day.Sections {
		sections = append(sections, fmt.Sprintf("%s. %s\n%s\n", s.ID, s.Title, s.Content))
	}
	sb.WriteString(strings.Join(sections, "\n"))

	return sb.String()
}

// writeList emits a bulleted list with a trailing blank line, or nothing at
// all when the list is empty.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label)
	sb.WriteString(":\n")
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	sb.WriteString("\n\n")
}
