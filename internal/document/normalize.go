package document

// Normalize enforces the document invariants in place and returns d:
// non-negative XP, derived level, unique completion dates per habit, bounded
// logs, current version, and empty (never nil) collections so the writer
// always emits arrays.
func (d *Document) Normalize() *Document {
	if d.Stats.XP < 0 {
		d.Stats.XP = 0
	}
	d.Stats.Level = LevelForXP(d.Stats.XP)
	d.Version = CurrentVersion

	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	for i := range d.Habits {
		d.Habits[i].CompletedDates = uniqueDates(d.Habits[i].CompletedDates)
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Logs == nil {
		d.Logs = []LogEntry{}
	}
	if len(d.Logs) > MaxLogEntries {
		d.Logs = d.Logs[:MaxLogEntries]
	}
	if d.Exams == nil {
		d.Exams = []Exam{}
	}
	for i := range d.Exams {
		if d.Exams[i].StudyMaterials == nil {
			d.Exams[i].StudyMaterials = []string{}
		}
	}
	if d.Subjects == nil {
		d.Subjects = []Subject{}
	}
	if d.Chapters == nil {
		d.Chapters = []Chapter{}
	}
	if d.Topics == nil {
		d.Topics = []Topic{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	return d
}

func uniqueDates(dates []string) []string {
	out := make([]string, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, day := range dates {
		if seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, day)
	}
	return out
}

// HabitByID returns the index of the habit with the given id, or -1.
func (d Document) HabitByID(id string) int {
	for i := range d.Habits {
		if d.Habits[i].ID == id {
			return i
		}
	}
	return -1
}

// ProjectByID returns the index of the project with the given id, or -1.
func (d Document) ProjectByID(id string) int {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedOn reports whether the habit has a completion for day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
