package engine

import "ascend/internal/document"

// Achievement is a badge derived from the document. Achievements are never
// persisted; they are recomputed on every read.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements a document has earned.
type AchievementChecker struct {
	doc   document.Document
	today string
}

func NewAchievementChecker(doc document.Document, today string) *AchievementChecker {
	return &AchievementChecker{doc: doc, today: today}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("getting_started", "Getting Started", "Reach level 2", "🌿", 2),
		c.levelAchievement("on_the_path", "On the Path", "Reach level 5", "🌳", 5),
		c.levelAchievement("seasoned", "Seasoned", "Reach level 10", "⭐", 10),
		c.levelAchievement("master", "Master", "Reach level 25", "💫", 25),

		// Habit completions
		c.completionAchievement("first_check", "First Check", "Complete a habit once", "✓", 1),
		c.completionAchievement("consistent", "Consistent", "Log 50 habit completions", "📋", 50),
		c.completionAchievement("relentless", "Relentless", "Log 250 habit completions", "🏆", 250),
		c.streakAchievement("week_streak", "Seven Days", "Keep any habit for 7 days in a row", "🔥", 7),
		c.streakAchievement("month_streak", "Thirty Days", "Keep any habit for 30 days in a row", "🌋", 30),

		// Categories
		c.categoryAchievement("body", "Body", "Complete a Physical habit", "💪", document.CategoryPhysical),
		c.categoryAchievement("mind", "Mind", "Complete an Intelligence habit", "🧠", document.CategoryIntelligence),
		c.categoryAchievement("wealth", "Wealth", "Complete a Wealth habit", "💰", document.CategoryWealth),

		// Projects
		c.projectAchievement("shipped", "Shipped", "Complete a project", "📦"),
		c.incomeAchievement("first_income", "First Income", "Earn income from a project", "💵"),

		// Study
		c.chapterAchievement("scholar", "Scholar", "Finish a chapter", "📚"),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := c.doc.Level() >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) completionAchievement(id, name, desc, icon string, count int) Achievement {
	total := 0
	for _, h := range c.doc.Habits {
		total += len(h.CompletedDates)
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: total >= count}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	earned := false
	for _, h := range c.doc.Habits {
		if HabitStreak(h, c.today) >= days {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) categoryAchievement(id, name, desc, icon string, cat document.Category) Achievement {
	earned := false
	for _, h := range c.doc.Habits {
		if h.Category == cat && len(h.CompletedDates) > 0 {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) projectAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, p := range c.doc.Projects {
		if p.Status == document.StatusCompleted {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) incomeAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, p := range c.doc.Projects {
		if p.Income > 0 {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) chapterAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, ch := range c.doc.Chapters {
		if ch.Completed {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
