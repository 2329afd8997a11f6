// Package types provides shared types used across multiple packages.
// This package has no dependencies on other aralplan packages to avoid import cycles.
package types

// ObjectivesKind indicates which objectives variant a day plan carries.
type ObjectivesKind string

const (
	// ObjectivesPlain indicates a flat 3-5 item objectives list.
	ObjectivesPlain ObjectivesKind = "plain"
	// ObjectivesTaxonomy indicates paired SOLO (4) and HOTS (6) objective lists.
	ObjectivesTaxonomy ObjectivesKind = "taxonomy"
	// ObjectivesNone indicates a day with no objectives at all.
	ObjectivesNone ObjectivesKind = "none"
)

// LessonPlanSection is one of the ten lettered DepEd procedure steps (A-J).
type LessonPlanSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DayPlan is one day's lesson plan. Exactly one objectives variant is
// populated per plan, decided by the integrate-objectives flag at
// generation time: either Objectives alone, or SoloObjectives plus
// HotsObjectives.
type DayPlan struct {
	Day            int                 `json:"day"`
	Objectives     []string            `json:"objectives,omitempty"`
	SoloObjectives []string            `json:"soloObjectives,omitempty"`
	HotsObjectives []string            `json:"hotsObjectives,omitempty"`
	Sections       []LessonPlanSection `json:"sections"`
}

// ObjectivesKind reports which objectives variant this day carries.
func (d DayPlan) ObjectivesKind() ObjectivesKind {
	if len(d.SoloObjectives) > 0 || len(d.HotsObjectives) > 0 {
		return ObjectivesTaxonomy
	}
	if len(d.Objectives) > 0 {
		return ObjectivesPlain
	}
	return ObjectivesNone
}

// Section returns the section with the given id, or false when the day
// does not carry it. Renderers fall back to a placeholder in that case.
func (d DayPlan) Section(id string) (LessonPlanSection, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return LessonPlanSection{}, false
}

// LessonPlan is an ordered list of day plans, day ascending.
type LessonPlan struct {
	Days []DayPlan `json:"days"`
}

// GeneratedData is a generated lesson plan together with the competency it
// was built from. When the user supplied no competency and a PDF was
// uploaded instead, Competency holds the value the model derived.
type GeneratedData struct {
	LessonPlan LessonPlan `json:"lessonPlan"`
	Competency string     `json:"competency"`
}

// PrintInfo is the institutional header block of a printed Daily Lesson Log.
type PrintInfo struct {
	School       string `json:"school"`
	Teacher      string `json:"teacher"`
	GradeLevel   string `json:"grade_level"`
	LearningArea string `json:"learning_area"`
	Quarter      string `json:"quarter"`
}
