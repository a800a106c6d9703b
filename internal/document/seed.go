package document

// Seed returns the default document used on first run and whenever stored
// state cannot be read. Each call returns an independent value.
func Seed() Document {
	return Document{
		Version: CurrentVersion,
		User: User{
			Name:   "Player",
			Title:  "Novice",
			Avatar: "",
		},
		Stats: Stats{XP: 0, Level: 1, Streak: 0},
		Habits: []Habit{
			{ID: "h1", Name: "7h+ Sleep (Growth Hormone)", Category: CategoryPhysical, Frequency: "daily", CompletedDates: []string{}, XPValue: 50},
			{ID: "h2", Name: "Workout / Sports", Category: CategoryPhysical, Frequency: "daily", CompletedDates: []string{}, XPValue: 75},
			{ID: "h3", Name: "Deep Study (4h)", Category: CategoryIntelligence, Frequency: "daily", CompletedDates: []string{}, XPValue: 100},
			{ID: "h4", Name: "Skill Practice (1h)", Category: CategorySkills, Frequency: "daily", CompletedDates: []string{}, XPValue: 60},
			{ID: "h5", Name: "No Junk Food", Category: CategoryDiscipline, Frequency: "daily", CompletedDates: []string{}, XPValue: 40},
			{ID: "h6", Name: "Save or Invest Income", Category: CategoryWealth, Frequency: "weekly", CompletedDates: []string{}, XPValue: 80},
		},
		Projects: []Project{
			{
				ID:          "p1",
				Title:       "Portfolio Website",
				Description: "Personal site with case studies",
				Status:      StatusInProgress,
				IsMonetized: false,
				Income:      0,
				DueDate:     "",
				Priority:    PriorityMedium,
			},
		},
		Logs: []LogEntry{},
		Exams: []Exam{
			{ID: "e1", Name: "Board Exams", Date: "", StudyMaterials: []string{}},
		},
		Subjects: []Subject{
			{ID: "s1", ExamID: "e1", Name: "Physics"},
			{ID: "s2", ExamID: "e1", Name: "Mathematics"},
		},
		Chapters: []Chapter{
			{ID: "c1", SubjectID: "s1", Name: "Electrostatics"},
			{ID: "c2", SubjectID: "s1", Name: "Optics"},
			{ID: "c3", SubjectID: "s2", Name: "Calculus"},
		},
		Topics: []Topic{
			{ID: "t1", ChapterID: "c1", Name: "Coulomb's Law"},
			{ID: "t2", ChapterID: "c1", Name: "Gauss's Law"},
			{ID: "t3", ChapterID: "c3", Name: "Limits"},
		},
		Skills: []Skill{
			{ID: "sk1", Name: "Programming", Category: "Tech", Level: 1},
			{ID: "sk2", Name: "Public Speaking", Category: "Communication", Level: 1},
		},
		Discipline: Discipline{},
		Physical:   Physical{},
		Settings: Settings{
			Theme:         "dark",
			Notifications: true,
			DailyXPGoal:   200,
			ActiveSections: ActiveSections{
				Habits:     true,
				Exams:      true,
				Projects:   true,
				Skills:     true,
				Physical:   true,
				Discipline: true,
			},
		},
	}
}
