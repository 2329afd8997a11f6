package docx

import (
	"fmt"
	"strings"

	"github.com/jpsantiago/aralplan/internal/plan"
	"github.com/jpsantiago/aralplan/internal/printview"
	"github.com/jpsantiago/aralplan/internal/types"
)

const documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
`

// Page sizes in twentieths of a point. Letter is 12240x15840.
const (
	portraitSectPr = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"/></w:sectPr>
`
	landscapeSectPr = `<w:sectPr><w:pgSz w:w="15840" w:h="12240" w:orient="landscape"/><w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"/></w:sectPr>
`
	documentClose = `</w:body>
</w:document>
`
)

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// runs renders text as runs, turning newlines into line breaks.
func runs(text string, bold bool) string {
	var sb strings.Builder
	props := ""
	if bold {
		props = "<w:rPr><w:b/></w:rPr>"
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("<w:r><w:br/></w:r>")
		}
		sb.WriteString("<w:r>")
		sb.WriteString(props)
		sb.WriteString(`<w:t xml:space="preserve">`)
		sb.WriteString(escapeXML(line))
		sb.WriteString("</w:t></w:r>")
	}
	return sb.String()
}

func para(text string) string {
	return "<w:p>" + runs(text, false) + "</w:p>\n"
}

func boldPara(text string) string {
	return "<w:p>" + runs(text, true) + "</w:p>\n"
}

func titlePara(text string) string {
	return `<w:p><w:pPr><w:jc w:val="center"/></w:pPr>` + runs(text, true) + "</w:p>\n"
}

func emptyPara() string {
	return "<w:p/>\n"
}

func pageBreak() string {
	return `<w:p><w:r><w:br w:type="page"/></w:r></w:p>` + "\n"
}

// cell renders a table cell. Width is in twentieths of a point; zero
// means auto.
func cell(width int, content string) string {
	props := "<w:tcPr>"
	if width > 0 {
		props += fmt.Sprintf(`<w:tcW w:w="%d" w:type="dxa"/>`, width)
	}
	props += "</w:tcPr>"
	if content == "" {
		content = emptyPara()
	}
	return "<w:tc>" + props + content + "</w:tc>"
}

func row(cells ...string) string {
	return "<w:tr>" + strings.Join(cells, "") + "</w:tr>\n"
}

func table(colWidths []int, rows string) string {
	var sb strings.Builder
	sb.WriteString(`<w:tbl><w:tblPr><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		sb.WriteString(fmt.Sprintf(`<w:%s w:val="single" w:sz="4" w:color="000000"/>`, edge))
	}
	sb.WriteString(`</w:tblBorders><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid>`)
	for _, w := range colWidths {
		sb.WriteString(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, w))
	}
	sb.WriteString("</w:tblGrid>\n")
	sb.WriteString(rows)
	sb.WriteString("</w:tbl>\n")
	return sb.String()
}

// headerTable renders the School/Teacher/Dates block for one day label.
func (b *Builder) headerTable(dateLabel string) string {
	label := func(text string) string { return cell(2000, boldPara(text)) }
	value := func(text string) string { return cell(3400, para(text)) }

	rows := row(label("School"), value(b.info.School), label("Grade Level"), value(b.info.GradeLevel)) +
		row(label("Teacher"), value(b.info.Teacher), label("Learning Area"), value(b.info.LearningArea)) +
		row(label("Teaching Dates & Time"), value(dateLabel), label("Quarter"), value(b.info.Quarter))

	return table([]int{2000, 3400, 2000, 3400}, rows)
}

func objectivesList(day types.DayPlan) string {
	var sb strings.Builder
	for _, obj := range day.Objectives {
		sb.WriteString(para("• " + obj))
	}
	for _, obj := range day.SoloObjectives {
		sb.WriteString(para("• " + obj))
	}
	for _, obj := range day.HotsObjectives {
		sb.WriteString(para("• " + obj))
	}
	return sb.String()
}

func sectionContent(day types.DayPlan, id string) string {
	if section, ok := day.Section(id); ok {
		return section.Content
	}
	return "N/A"
}

// objectivesBoilerplate is the static A/B/C standards block under
// I. OBJECTIVES.
func objectivesBoilerplate() string {
	return boldPara("A. Content Standards") +
		para("(Pamantayang Pangnilalaman) - From Curriculum Guide") +
		boldPara("B. Performance Standards") +
		para("(Pamantayan sa Pagganap) - From Curriculum Guide") +
		boldPara("C. Learning Competencies/Objectives") +
		para("(Mga Kasanayan sa Pagkatuto)")
}

func referencesBoilerplate() string {
	return boldPara("A. References") +
		para("1. Teacher's Guide pages") +
		para("2. Learner's Materials pages") +
		para("3. Textbook pages") +
		para("4. Additional Materials from Learning Resource (LR) portal") +
		boldPara("B. Other Learning Resources")
}

func reflectionBoilerplate() string {
	return para("A. No. of learners who earned 80% in the evaluation") +
		para("B. No. of learners who require additional activities for remediation") +
		para("C. Did the remedial lessons work? No. of learners who have caught up with the lesson") +
		para("D. No. of learners who continue to require remediation") +
		para("E. Which of my teaching strategies worked well? Why did these work?") +
		para("F. What difficulties did I encounter which my principal or supervisor can help me solve?") +
		para("G. What innovation or localized materials did I use/discover which I wish to share with other teachers?")
}

// generateDailyDocument renders one portrait section per day with a page
// break between days.
func (b *Builder) generateDailyDocument() string {
	var sb strings.Builder
	sb.WriteString(documentOpen)

	for i, day := range b.data.LessonPlan.Days {
		if i > 0 {
			sb.WriteString(pageBreak())
		}

		sb.WriteString(titlePara("DAILY LESSON LOG"))
		sb.WriteString(b.headerTable(fmt.Sprintf("Week %d, Day %d", plan.WeekOf(i), day.Day)))
		sb.WriteString(emptyPara())

		sb.WriteString(boldPara("I. OBJECTIVES"))
		sb.WriteString(objectivesBoilerplate())
		sb.WriteString(objectivesList(day))

		sb.WriteString(boldPara("II. CONTENT"))
		sb.WriteString(para(b.data.Competency))

		sb.WriteString(boldPara("III. LEARNING RESOURCES"))
		sb.WriteString(referencesBoilerplate())

		sb.WriteString(boldPara("IV. PROCEDURES"))
		for _, id := range types.SectionIDs {
			sb.WriteString(boldPara(printview.ProcedureLabel(id)))
			sb.WriteString(para(sectionContent(day, id)))
		}

		sb.WriteString(boldPara("V. REMARKS"))
		sb.WriteString(emptyPara())

		sb.WriteString(boldPara("VI. REFLECTION"))
		sb.WriteString(reflectionBoilerplate())
	}

	sb.WriteString(portraitSectPr)
	sb.WriteString(documentClose)
	return sb.String()
}
