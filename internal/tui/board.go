package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ascend/internal/document"
	"ascend/internal/engine"
	"ascend/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	doc   document.Document
	today string

	selected int

	lastLog string
	loading bool
	// busy is set while a command that touches the Service is in flight;
	// no other one is dispatched until its message arrives.
	busy bool
}

type loadedMsg struct {
	doc   document.Document
	today string
}

type toggledMsg struct {
	habit  string
	before document.Document
	after  document.Document
}

type projectAddedMsg struct {
	before document.Document
	after  document.Document
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		busy:    true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{doc: m.svc.Document(), today: m.svc.Reducer().Today()}
	}
}

// reloadCmd reads storage again, picking up changes made by other
// processes.
func (m boardModel) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{doc: m.svc.Reload(m.ctx), today: m.svc.Reducer().Today()}
	}
}

func (m boardModel) toggleCmd(habitID string) tea.Cmd {
	return func() tea.Msg {
		before := m.svc.Document()
		after := m.svc.ToggleHabit(m.ctx, habitID)
		return toggledMsg{habit: habitID, before: before, after: after}
	}
}

func (m boardModel) addProjectCmd() tea.Cmd {
	return func() tea.Msg {
		before := m.svc.Document()
		after := m.svc.AddProject(m.ctx)
		return projectAddedMsg{before: before, after: after}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.busy = false
		m.doc = msg.doc
		m.today = msg.today
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		m.busy = false
		m.doc = msg.after
		idx := msg.after.HabitByID(msg.habit)
		if idx < 0 {
			m.lastLog = "Habit not found."
			return m, nil
		}
		h := msg.after.Habits[idx]
		delta := msg.after.Stats.XP - msg.before.Stats.XP
		if h.CompletedOn(m.today) {
			m.lastLog = fmt.Sprintf("Done: %s (%+d XP)", h.Name, delta)
		} else {
			m.lastLog = fmt.Sprintf("Undone: %s (%+d XP)", h.Name, delta)
		}
		m.lastLog += levelNote(msg.before.Level(), msg.after.Level())
		return m, nil
	case projectAddedMsg:
		m.busy = false
		m.doc = msg.after
		m.lastLog = fmt.Sprintf("Created %s (+%d XP)", msg.after.Projects[0].Title, engine.ProjectInitXP)
		m.lastLog += levelNote(msg.before.Level(), msg.after.Level())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.reloadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.doc.Habits)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.busy || m.selected < 0 || m.selected >= len(m.doc.Habits) {
				return m, nil
			}
			h := m.doc.Habits[m.selected]
			m.busy = true
			m.lastLog = "Toggling " + h.Name + "…"
			return m, m.toggleCmd(h.ID)
		case "p":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.lastLog = "Creating project…"
			return m, m.addProjectCmd()
		}
	}
	return m, nil
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.doc.Habits) {
		m.selected = len(m.doc.Habits) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func levelNote(before, after int) string {
	if after != before {
		return fmt.Sprintf(" (level %d → %d)", before, after)
	}
	return ""
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading {
		return "Ascend — loading…"
	}
	xp := m.doc.Stats.XP
	return fmt.Sprintf("Ascend | %s | Level %d | XP %d %s", m.doc.User.Name, m.doc.Level(), xp, ui.LevelBar(xp, 30))
}

func (m boardModel) renderSidebar() string {
	if m.loading {
		return "Today\n\nLoading…"
	}
	done, xp := engine.CompletedToday(m.doc, m.today)
	lines := []string{"Today " + m.today}
	lines = append(lines, fmt.Sprintf("- habits %d/%d", done, len(m.doc.Habits)))
	lines = append(lines, fmt.Sprintf("- xp +%d", xp))
	if goal := m.doc.Settings.DailyXPGoal; goal > 0 {
		lines = append(lines, "- goal "+ui.ProgressBar(xp, goal, 14))
	}
	lines = append(lines, "")
	lines = append(lines, "Projects")
	if len(m.doc.Projects) == 0 {
		lines = append(lines, "(none)")
	}
	for i, p := range m.doc.Projects {
		if i == 5 {
			lines = append(lines, fmt.Sprintf("… %d more", len(m.doc.Projects)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("- %s [%s]", p.Title, p.Status))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- p: new project")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{"Habits"}
	if len(m.doc.Habits) == 0 {
		out = append(out, "(empty)")
	}
	for i, h := range m.doc.Habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		box := "[ ]"
		if h.CompletedOn(m.today) {
			box = "[x]"
		}
		streak := ""
		if s := engine.HabitStreak(h, m.today); s > 1 {
			streak = fmt.Sprintf(" %s%d", ui.IconFire, s)
		}
		out = append(out, fmt.Sprintf("%s%s %s %s (+%d)%s", cursor, box, ui.CategoryIcon(h.Category), h.Name, h.XPValue, streak))
	}

	out = append(out, "")
	out = append(out, "Recent")
	if len(m.doc.Logs) == 0 {
		out = append(out, "(empty)")
	}
	for i, e := range m.doc.Logs {
		if i == 5 {
			break
		}
		out = append(out, fmt.Sprintf("- %s %+g %s", e.Timestamp.Local().Format("15:04"), e.Value, e.Label))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
