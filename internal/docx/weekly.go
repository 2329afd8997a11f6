package docx

import (
	"fmt"
	"strings"

	"github.com/jpsantiago/aralplan/internal/plan"
	"github.com/jpsantiago/aralplan/internal/printview"
	"github.com/jpsantiago/aralplan/internal/types"
)

// Weekly grid column widths: one label column plus five weekday columns
// sized for landscape letter.
var weeklyColWidths = []int{2400, 2400, 2400, 2400, 2400, 2400}

// generateWeeklyDocument renders one landscape Monday-Friday grid per
// week. Plans longer than five days continue on a new grid for the next
// week rather than being dropped.
func (b *Builder) generateWeeklyDocument() string {
	var sb strings.Builder
	sb.WriteString(documentOpen)

	chunks := plan.WeekChunks(len(b.data.LessonPlan.Days))
	for w, chunk := range chunks {
		if w > 0 {
			sb.WriteString(pageBreak())
		}

		first := b.data.LessonPlan.Days[chunk[0]]
		last := b.data.LessonPlan.Days[chunk[len(chunk)-1]]
		dateLabel := fmt.Sprintf("Week %d, Days %d-%d", w+1, first.Day, last.Day)
		if len(chunk) == 1 {
			dateLabel = fmt.Sprintf("Week %d, Day %d", w+1, first.Day)
		}

		sb.WriteString(titlePara("DAILY LESSON LOG"))
		sb.WriteString(b.headerTable(dateLabel))
		sb.WriteString(emptyPara())
		sb.WriteString(b.weeklyGrid(chunk))
	}

	sb.WriteString(landscapeSectPr)
	sb.WriteString(documentClose)
	return sb.String()
}

// weeklyGrid renders the grid for one week's worth of day indexes.
func (b *Builder) weeklyGrid(chunk []int) string {
	days := b.data.LessonPlan.Days

	// Weekday header row. Slots past the plan's length stay blank.
	cells := []string{cell(2400, emptyPara())}
	for slot := 0; slot < 5; slot++ {
		if slot < len(chunk) {
			day := days[chunk[slot]]
			label := fmt.Sprintf("%s (Day %d)", plan.WeekdayName(chunk[slot]), day.Day)
			cells = append(cells, cell(2400, boldPara(label)))
		} else {
			cells = append(cells, cell(2400, emptyPara()))
		}
	}
	rows := row(cells...)

	// One row per grid section; each weekday cell carries that day's
	// content for the section.
	rows += b.weeklyRow("I. OBJECTIVES", chunk, func(day types.DayPlan) string {
		return objectivesList(day)
	})
	rows += b.weeklyRow("II. CONTENT", chunk, func(types.DayPlan) string {
		return para(b.data.Competency)
	})
	rows += b.weeklyRow("III. LEARNING RESOURCES", chunk, func(types.DayPlan) string {
		return emptyPara()
	})
	for _, id := range types.SectionIDs {
		id := id
		rows += b.weeklyRow("IV. "+printview.ProcedureLabel(id), chunk, func(day types.DayPlan) string {
			return para(sectionContent(day, id))
		})
	}
	rows += b.weeklyRow("V. REMARKS", chunk, func(types.DayPlan) string {
		return emptyPara()
	})
	rows += b.weeklyRow("VI. REFLECTION", chunk, func(types.DayPlan) string {
		return emptyPara()
	})

	return table(weeklyColWidths, rows)
}

func (b *Builder) weeklyRow(label string, chunk []int, content func(types.DayPlan) string) string {
	days := b.data.LessonPlan.Days
	cells := []string{cell(2400, boldPara(label))}
	for slot := 0; slot < 5; slot++ {
		if slot < len(chunk) {
			cells = append(cells, cell(2400, content(days[chunk[slot]])))
		} else {
			cells = append(cells, cell(2400, emptyPara()))
		}
	}
	return row(cells...)
}
