// Package state holds the server's in-memory session: the current
// generated plan, the print header fields, and the generation busy flag.
// Nothing is persisted; a restart clears the session.
package state

import (
	"sync"

	"github.com/jpsantiago/aralplan/internal/plan"
	"github.com/jpsantiago/aralplan/internal/types"
)

// DefaultPrintInfo returns the placeholder header used until the teacher
// fills in their own details.
func DefaultPrintInfo() types.PrintInfo {
	return types.PrintInfo{
		School:       "Sample National High School",
		Teacher:      "Juan Dela Cruz",
		GradeLevel:   "Grade 10",
		LearningArea: "Araling Panlipunan",
		Quarter:      "First Quarter",
	}
}

// Store is a thread-safe holder for the current session. Plans are
// treated as immutable; edits go through copy-on-write so concurrent
// readers never observe a partially updated plan.
type Store struct {
	mu         sync.RWMutex
	data       *types.GeneratedData
	info       types.PrintInfo
	generating bool
}

// New creates a store with default print info and no plan.
func New() *Store {
	return &Store{info: DefaultPrintInfo()}
}

// BeginGeneration marks a generation as in flight. It returns false if
// one is already running; only one runs at a time.
func (s *Store) BeginGeneration() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return false
	}
	s.generating = true
	return true
}

// EndGeneration clears the busy flag.
func (s *Store) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

// Generating reports whether a generation is in flight.
func (s *Store) Generating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating
}

// Set replaces the current plan.
func (s *Store) Set(data *types.GeneratedData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// Clear removes the current plan.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}

// Current returns the current plan, or false when none has been
// generated yet. Callers must not mutate the returned value.
func (s *Store) Current() (*types.GeneratedData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, false
	}
	return s.data, true
}

// EditSection replaces one section's content. Out-of-range indexes and
// unknown section ids leave the plan unchanged. It returns false when no
// plan exists.
func (s *Store) EditSection(dayIndex int, sectionID, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return false
	}
	updated := *s.data
	updated.LessonPlan = plan.ApplySectionEdit(s.data.LessonPlan, dayIndex, sectionID, content)
	s.data = &updated
	return true
}

// SetPrintInfo replaces the print header fields.
func (s *Store) SetPrintInfo(info types.PrintInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

// PrintInfo returns the current print header fields.
func (s *Store) PrintInfo() types.PrintInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}
