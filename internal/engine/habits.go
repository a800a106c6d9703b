package engine

import (
	"time"

	"ascend/internal/document"
)

// HabitStreak counts consecutive completed days ending at today, or at
// yesterday when today is not yet checked.
func HabitStreak(h document.Habit, today string) int {
	day, err := time.Parse(document.DateLayout, today)
	if err != nil {
		return 0
	}
	done := make(map[string]bool, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		done[d] = true
	}
	if !done[today] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for done[day.Format(document.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CompletedToday returns how many habits are checked for today and how
// much XP they are worth.
func CompletedToday(doc document.Document, today string) (count int, xp int) {
	for _, h := range doc.Habits {
		if h.CompletedOn(today) {
			count++
			xp += h.XPValue
		}
	}
	return count, xp
}
