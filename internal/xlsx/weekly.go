// Package xlsx exports the lesson plan as a spreadsheet grid, one sheet
// per week with weekdays across the columns.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jpsantiago/aralplan/internal/plan"
	"github.com/jpsantiago/aralplan/internal/printview"
	"github.com/jpsantiago/aralplan/internal/types"
)

// Filename is the download filename for the spreadsheet export.
const Filename = "lesson-plan.xlsx"

// ContentType is the MIME type for XLSX downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Write renders the plan as a workbook and writes it to w.
func Write(w io.Writer, data *types.GeneratedData, info types.PrintInfo) error {
	f := excelize.NewFile()
	defer f.Close()

	chunks := plan.WeekChunks(len(data.LessonPlan.Days))
	for week, chunk := range chunks {
		sheet := fmt.Sprintf("Week %d", week+1)
		if week == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}
		if err := writeWeek(f, sheet, data, info, chunk); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeWeek(f *excelize.File, sheet string, data *types.GeneratedData, info types.PrintInfo, chunk []int) error {
	set := func(cell string, value any) error {
		return f.SetCellValue(sheet, cell, value)
	}

	header := [][2]string{
		{"A1", "School"}, {"B1", info.School}, {"C1", "Grade Level"}, {"D1", info.GradeLevel},
		{"A2", "Teacher"}, {"B2", info.Teacher}, {"C2", "Learning Area"}, {"D2", info.LearningArea},
		{"A3", "Quarter"}, {"B3", info.Quarter}, {"C3", "Competency"}, {"D3", data.Competency},
	}
	for _, kv := range header {
		if err := set(kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to set %s: %w", kv[0], err)
		}
	}

	// Weekday header row.
	days := data.LessonPlan.Days
	for slot, dayIndex := range chunk {
		col := string(rune('B' + slot))
		label := fmt.Sprintf("%s (Day %d)", plan.WeekdayName(dayIndex), days[dayIndex].Day)
		if err := set(col+"5", label); err != nil {
			return fmt.Errorf("failed to set weekday header: %w", err)
		}
	}

	// Objectives row, then one row per procedure section.
	if err := set("A6", "Objectives"); err != nil {
		return err
	}
	for slot, dayIndex := range chunk {
		col := string(rune('B' + slot))
		day := days[dayIndex]
		text := ""
		for _, obj := range append(append(append([]string{}, day.Objectives...), day.SoloObjectives...), day.HotsObjectives...) {
			if text != "" {
				text += "\n"
			}
			text += "- " + obj
		}
		if err := set(col+"6", text); err != nil {
			return fmt.Errorf("failed to set objectives: %w", err)
		}
	}

	for i, id := range types.SectionIDs {
		rowNum := 7 + i
		if err := set(fmt.Sprintf("A%d", rowNum), printview.ProcedureLabel(id)); err != nil {
			return err
		}
		for slot, dayIndex := range chunk {
			col := string(rune('B' + slot))
			content := "N/A"
			if section, ok := days[dayIndex].Section(id); ok {
				content = section.Content
			}
			if err := set(fmt.Sprintf("%s%d", col, rowNum), content); err != nil {
				return fmt.Errorf("failed to set section %s: %w", id, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 42); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "F", 36); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}
