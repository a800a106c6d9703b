package document

import "slices"

// Clone returns a deep copy of d. Intents work on clones so the caller's
// document is never mutated.
func (d Document) Clone() Document {
	out := d
	out.Habits = make([]Habit, len(d.Habits))
	for i, h := range d.Habits {
		h.CompletedDates = slices.Clone(h.CompletedDates)
		out.Habits[i] = h
	}
	out.Projects = slices.Clone(d.Projects)
	out.Logs = slices.Clone(d.Logs)
	out.Exams = make([]Exam, len(d.Exams))
	for i, e := range d.Exams {
		e.StudyMaterials = slices.Clone(e.StudyMaterials)
		out.Exams[i] = e
	}
	out.Subjects = slices.Clone(d.Subjects)
	out.Chapters = slices.Clone(d.Chapters)
	out.Topics = slices.Clone(d.Topics)
	out.Skills = slices.Clone(d.Skills)
	return out
}
