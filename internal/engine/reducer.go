package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ascend/internal/document"
)

const (
	// ProjectInitXP is granted when a project is created.
	ProjectInitXP = 100

	projectDueIn = 7 * 24 * time.Hour
)

// Reducer applies intents to a document. Every intent works on a clone and
// returns it; the argument is never modified. The clock and id generator
// are the only inputs besides the document.
//
// Ids come from uuid.NewString (random v4): probabilistically unique, which
// is enough for a single-user local store.
type Reducer struct {
	now    func() time.Time
	newID  func() string
	policy ToggleOffPolicy
}

type ReducerOption func(*Reducer)

func WithClock(now func() time.Time) ReducerOption {
	return func(r *Reducer) { r.now = now }
}

func WithIDGenerator(newID func() string) ReducerOption {
	return func(r *Reducer) { r.newID = newID }
}

func WithToggleOffPolicy(p ToggleOffPolicy) ReducerOption {
	return func(r *Reducer) { r.policy = p }
}

func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{
		now:    time.Now,
		newID:  uuid.NewString,
		policy: KeepReward,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reducer) Policy() ToggleOffPolicy { return r.policy }

// Today is the device-local calendar day as YYYY-MM-DD.
func (r *Reducer) Today() string {
	return r.now().Local().Format(document.DateLayout)
}

// AddExperience records an XP grant and adds it to the total.
func (r *Reducer) AddExperience(doc document.Document, amount int, label string) document.Document {
	next := doc.Clone()
	r.grant(&next, amount, label)
	return next
}

func (r *Reducer) grant(doc *document.Document, amount int, label string) {
	r.prependLog(doc, document.LogXP, float64(amount), label)
	doc.Stats.XP += amount
	if doc.Stats.XP < 0 {
		doc.Stats.XP = 0
	}
	doc.Stats.Level = document.LevelForXP(doc.Stats.XP)
}

func (r *Reducer) prependLog(doc *document.Document, kind document.LogKind, value float64, label string) {
	entry := document.LogEntry{
		ID:        r.newID(),
		Timestamp: r.now(),
		Type:      kind,
		Value:     value,
		Label:     label,
	}
	logs := make([]document.LogEntry, 0, min(len(doc.Logs)+1, document.MaxLogEntries))
	logs = append(logs, entry)
	logs = append(logs, doc.Logs...)
	if len(logs) > document.MaxLogEntries {
		logs = logs[:document.MaxLogEntries]
	}
	doc.Logs = logs
}

// ToggleHabit flips today's completion for a habit. Checking it grants the
// habit's XP; un-checking follows the reducer's ToggleOffPolicy. An unknown
// id returns the document unchanged.
func (r *Reducer) ToggleHabit(doc document.Document, habitID string) document.Document {
	idx := doc.HabitByID(habitID)
	if idx < 0 {
		return doc.Clone()
	}
	next := doc.Clone()
	h := &next.Habits[idx]
	today := r.Today()

	if h.CompletedOn(today) {
		kept := h.CompletedDates[:0]
		for _, d := range h.CompletedDates {
			if d != today {
				kept = append(kept, d)
			}
		}
		h.CompletedDates = kept
		if r.policy == RevokeReward {
			r.grant(&next, -h.XPValue, "Habit undone: "+h.Name)
		}
		return next
	}

	h.CompletedDates = append(h.CompletedDates, today)
	r.grant(&next, h.XPValue, "Habit: "+h.Name)
	return next
}

// AddProject prepends a new monetized, high-priority project due in a week
// and grants ProjectInitXP.
func (r *Reducer) AddProject(doc document.Document) document.Document {
	next := doc.Clone()
	p := document.Project{
		ID:          r.newID(),
		Title:       fmt.Sprintf("New Project %d", len(doc.Projects)+1),
		Description: "",
		Status:      document.StatusPlanning,
		IsMonetized: true,
		Income:      0,
		DueDate:     r.now().Add(projectDueIn).Local().Format(document.DateLayout),
		Priority:    document.PriorityHigh,
	}
	next.Projects = append([]document.Project{p}, next.Projects...)
	r.grant(&next, ProjectInitXP, "Project Initialized")
	return next
}
