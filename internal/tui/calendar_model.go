package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtoledo/taskit/internal/models"
)

var (
	calHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true)
	calCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)
	calTodayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	calMarkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
)

func (m Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.deps.Store.Dirty() {
			m.saveErr = m.deps.Save()
		}
		return m, tea.Quit
	case "esc", "c":
		m.mode = modeList
	case "left":
		m.moveDay(-1)
	case "right":
		m.moveDay(1)
	case "up":
		m.moveDay(-7)
	case "down":
		m.moveDay(7)
	case "tab":
		m.shiftMonth(1)
	case "shift+tab":
		m.shiftMonth(-1)
	case "t":
		today := models.Today()
		m.calYear, m.calMonth, m.calDay = today.Year, today.Month, today.Day
	}
	return m, nil
}

func (m *Model) moveDay(delta int) {
	d := models.Date{Year: m.calYear, Month: m.calMonth, Day: m.calDay}.AddDays(delta)
	m.calYear, m.calMonth, m.calDay = d.Year, d.Month, d.Day
}

func (m *Model) shiftMonth(delta int) {
	t := time.Date(m.calYear, m.calMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.calYear, m.calMonth = t.Year(), t.Month()
	m.calDay = 1
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	byDate := m.deps.Queries.Calendar(m.calYear, m.calMonth)
	today := models.Today()

	b.WriteString(calHeaderStyle.Render(fmt.Sprintf("%s %d", m.calMonth, m.calYear)))
	b.WriteString("\n\nMo  Tu  We  Th  Fr  Sa  Su\n")
	b.WriteString(strings.Repeat("─", 26) + "\n")

	first := time.Date(m.calYear, m.calMonth, 1, 0, 0, 0, 0, time.UTC)
	col := (int(first.Weekday()) + 6) % 7 // Monday-first column
	line := strings.Repeat("    ", col)

	daysInMonth := time.Date(m.calYear, m.calMonth+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		d := models.Date{Year: m.calYear, Month: m.calMonth, Day: day}
		marked := len(byDate[d]) > 0

		mark := " "
		if marked {
			mark = "•"
		}
		cell := fmt.Sprintf("%s%2d ", mark, day)
		switch {
		case day == m.calDay:
			cell = calCursorStyle.Render(fmt.Sprintf("[%2d]", day))
		case d == today:
			cell = calTodayStyle.Render(cell)
		case marked:
			cell = calMarkedStyle.Render(cell)
		}
		line += cell
		col++
		if col == 7 {
			b.WriteString(line + "\n")
			line = ""
			col = 0
		}
	}
	if line != "" {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.renderDayTasks(byDate))
	b.WriteString("\n\n" + helpStyle.Render("←/→/↑/↓ day · tab month · t today · esc back · q quit"))
	return b.String()
}

func (m Model) renderDayTasks(byDate map[models.Date][]*models.Task) string {
	d := models.Date{Year: m.calYear, Month: m.calMonth, Day: m.calDay}
	tasks := byDate[d]
	if len(tasks) == 0 {
		return statusStyle.Render("No tasks due on " + d.String())
	}

	lines := []string{fmt.Sprintf("📋 %d task(s) due on %s:", len(tasks), d)}
	for _, t := range tasks {
		check := "☐"
		if t.Done {
			check = "☑"
		}
		line := fmt.Sprintf("  %s %s", check, t.Text)
		if t.GroupID != nil {
			if g, err := m.deps.Store.Group(*t.GroupID); err == nil {
				line += "  [" + g.Name + "]"
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
