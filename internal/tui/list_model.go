package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtoledo/taskit/internal/models"
	"github.com/mtoledo/taskit/internal/parser"
	"github.com/mtoledo/taskit/internal/query"
)

type viewMode int

const (
	modeList viewMode = iota
	modeCalendar
)

// saveTickMsg drives the periodic autosave on the event loop.
type saveTickMsg time.Time

// sortPresets are cycled with the s key.
var sortPresets = []struct {
	label string
	spec  []query.SortCriterion
}{
	{"creation", nil},
	{"priority↓", []query.SortCriterion{{Key: query.SortPriority, Dir: query.Descending}}},
	{"due↑", []query.SortCriterion{{Key: query.SortDueDate, Dir: query.Ascending}}},
	{"a→z", []query.SortCriterion{{Key: query.SortAlphabetical, Dir: query.Ascending}}},
}

// Model is the whole TUI: the list view with its scope/filter/sort
// state, and the calendar view.
type Model struct {
	deps   Deps
	width  int
	height int
	mode   viewMode

	scopeIdx     int
	statusFilter *query.Status
	sortIdx      int
	selected     int

	search    textinput.Model
	searching bool

	calYear  int
	calMonth time.Month
	calDay   int

	saveErr error
}

// NewModel builds the initial TUI state.
func NewModel(deps Deps) Model {
	search := textinput.New()
	search.Placeholder = "search tasks..."
	search.CharLimit = 60

	today := models.Today()
	return Model{
		deps:     deps,
		search:   search,
		calYear:  today.Year,
		calMonth: today.Month,
		calDay:   today.Day,
	}
}

// Init starts the autosave ticker.
func (m Model) Init() tea.Cmd {
	return m.saveTick()
}

func (m Model) saveTick() tea.Cmd {
	return tea.Tick(m.deps.Interval, func(t time.Time) tea.Msg {
		return saveTickMsg(t)
	})
}

// scopes lists the selectable tabs: General, Ungrouped, then each group.
func (m Model) scopes() []query.Scope {
	scopes := []query.Scope{query.General(), query.Ungrouped()}
	for _, g := range m.deps.Store.Groups() {
		scopes = append(scopes, query.InGroup(g.ID))
	}
	return scopes
}

func (m Model) currentScope() query.Scope {
	scopes := m.scopes()
	if m.scopeIdx >= len(scopes) {
		return query.General()
	}
	return scopes[m.scopeIdx]
}

func (m Model) currentFilter() query.Filter {
	return query.Filter{Status: m.statusFilter}
}

// visibleTasks is what the list renders: the facade's view, with
// pending tasks shown before completed ones.
func (m Model) visibleTasks() []*models.Task {
	var tasks []*models.Task
	if m.searching && m.search.Value() != "" {
		tasks = m.deps.Queries.Search(m.search.Value())
	} else {
		tasks = m.deps.Queries.VisibleTasks(m.currentScope(), m.currentFilter(), sortPresets[m.sortIdx].spec)
	}
	var pending, completed []*models.Task
	for _, t := range tasks {
		if t.Done {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return append(pending, completed...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saveTickMsg:
		if m.deps.Store.Dirty() {
			m.saveErr = m.deps.Save()
		}
		return m, m.saveTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		if m.mode == modeCalendar {
			return m.handleCalendarKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.visibleTasks()

	switch msg.String() {
	case "ctrl+c", "q":
		if m.deps.Store.Dirty() {
			m.saveErr = m.deps.Save()
		}
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(tasks)-1 {
			m.selected++
		}

	case "tab":
		m.scopeIdx = (m.scopeIdx + 1) % len(m.scopes())
		m.selected = 0
	case "shift+tab":
		m.scopeIdx = (m.scopeIdx - 1 + len(m.scopes())) % len(m.scopes())
		m.selected = 0

	case " ":
		if m.selected < len(tasks) {
			m.deps.Store.ToggleDone(tasks[m.selected].ID)
		}
	case "d":
		if m.selected < len(tasks) {
			m.deps.Store.DeleteTask(tasks[m.selected].ID)
			if m.selected > 0 {
				m.selected--
			}
		}

	case "f":
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.selected = 0
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortPresets)

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "c":
		m.mode = modeCalendar
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.selected = 0
		return m, nil
	case "enter":
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.selected = 0
	return m, cmd
}

// nextStatusFilter cycles all → pending → completed → all.
func nextStatusFilter(cur *query.Status) *query.Status {
	pending, completed := query.Pending, query.Completed
	switch {
	case cur == nil:
		return &pending
	case *cur == query.Pending:
		return &completed
	default:
		return nil
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true)
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Background(lipgloss.Color(ColorAccentMain)).
			Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Background(lipgloss.Color(ColorBorder))
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Strikethrough(true)
	dueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
)

// View renders the current mode.
func (m Model) View() string {
	if m.mode == modeCalendar {
		return m.viewCalendar()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskit"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString("🔍 " + m.search.View() + "\n\n")
	}

	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		b.WriteString(statusStyle.Render("No tasks here. Add one with 'taskit add \"task text\"'.") + "\n")
	}
	for i, t := range tasks {
		b.WriteString(m.renderTask(t, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.renderStatusLine(len(tasks)))
	b.WriteString("\n" + helpStyle.Render("↑/↓ move · space done · d delete · tab group · f filter · s sort · / search · c calendar · q quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	labels := []string{"📚 General", "No group"}
	for _, g := range m.deps.Store.Groups() {
		labels = append(labels, g.Name)
	}
	var tabs []string
	for i, l := range labels {
		if i == m.scopeIdx {
			tabs = append(tabs, activeTabStyle.Render(l))
		} else {
			tabs = append(tabs, tabStyle.Render(l))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderTask(t *models.Task, selected bool) string {
	check := "☐"
	if t.Done {
		check = "☑"
	}
	text := t.Text
	if n := len(t.Comments); n > 0 {
		text += fmt.Sprintf(" 💬%d", n)
	}
	line := fmt.Sprintf(" %s %s", check, text)
	if t.Priority != models.PriorityNone {
		line += " !" + t.Priority.String()
	}
	if t.DueDate != nil {
		line += "  " + dueStyle.Render(parser.FormatDueDate(t.DueDate))
	}

	switch {
	case selected:
		return selectedStyle.Render(line)
	case t.Done:
		return doneStyle.Render(line)
	default:
		return line
	}
}

func (m Model) renderStatusLine(shown int) string {
	stats := m.deps.Queries.Stats(m.currentScope(), m.currentFilter())
	line := fmt.Sprintf("Total: %d | Completed: %d | Pending: %d | Sort: %s",
		stats.Total, stats.Completed, stats.Pending, sortPresets[m.sortIdx].label)
	if m.statusFilter != nil {
		if *m.statusFilter == query.Pending {
			line += " | Filter: pending"
		} else {
			line += " | Filter: completed"
		}
	}
	if m.saveErr != nil {
		return statusStyle.Render(line) + "  " + errStyle.Render(fmt.Sprintf("save failed: %v", m.saveErr))
	}
	return statusStyle.Render(line)
}
