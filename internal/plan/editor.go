// Package plan provides pure transforms over lesson plan values: targeted
// section edits, the plain-text transcript, and week/day derivation.
package plan

import "github.com/jpsantiago/aralplan/internal/types"

// ApplySectionEdit returns a new plan with the content of one section
// replaced, addressed by 0-based day index and section letter. The input is
// never mutated; untouched days and sections are copied structurally.
//
// Addressing is permissive: an out-of-range day index or an unknown section
// id returns the input plan unchanged. Stale edits from an outdated view are
// ignored rather than rejected.
func ApplySectionEdit(p types.LessonPlan, dayIndex int, sectionID, content string) types.LessonPlan {
	if dayIndex < 0 || dayIndex >= len(p.Days) {
		return p
	}

	days := make([]types.DayPlan, len(p.Days))
	copy(days, p.Days)

	day := days[dayIndex]
	sections := make([]types.LessonPlanSection, len(day.Sections))
	copy(sections, day.Sections)
	for i, s := range sections {
		if s.ID == sectionID {
			s.Content = content
			sections[i] = s
		}
	}
	day.Sections = sections
	days[dayIndex] = day

	return types.LessonPlan{Days: days}
}
