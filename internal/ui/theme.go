package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ascend/internal/document"
)

// Ascend theme (CLI + TUI).

const (
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBox     = "📦"
	IconScroll  = "📜"
	IconMoney   = "💵"
	IconRuler   = "📏"
	IconFire    = "🔥"
	IconUndo    = "↩️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status document.ProjectStatus) string {
	switch status {
	case document.StatusCompleted:
		return Good.Render(string(status))
	case document.StatusInProgress:
		return H2.Render(string(status))
	case document.StatusPlanning:
		return Warn.Render(string(status))
	default:
		return Muted.Render(string(status))
	}
}

func CategoryIcon(c document.Category) string {
	switch c {
	case document.CategoryPhysical:
		return "💪"
	case document.CategoryIntelligence:
		return "🧠"
	case document.CategorySkills:
		return "🛠️"
	case document.CategoryDiscipline:
		return "🧘"
	case document.CategoryWealth:
		return "💰"
	default:
		return "•"
	}
}

// ProgressBar renders value/total as a fixed-width ASCII bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// LevelBar is the progress through the current level.
func LevelBar(xp int, width int) string {
	lvl := document.LevelForXP(xp)
	start := document.XPRequiredForLevel(lvl)
	return ProgressBar(xp-start, document.XPRequiredForLevel(lvl+1)-start, width)
}
