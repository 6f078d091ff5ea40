// Package tui is the interactive terminal frontend. It renders the impulse
// collection as tabs and re-derives every countdown from stored timestamps on
// each tick, so the display stays correct after suspend/resume.
package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/storage"
	"github.com/kmcrane/urge/internal/utils"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var tabNames = []string{"Pending", "History", "Stats", "Goals", "Settings"}

var tabStates = []constants.SessionState{
	constants.StatePending,
	constants.StateHistory,
	constants.StateStats,
	constants.StateGoals,
	constants.StateSettings,
}

type logInput struct {
	Title    string
	Price    string
	Category string
	Urgency  string
	Emotion  string
	Notes    string
}

type decideInput struct {
	Choice  string
	Feeling string
}

type regretInput struct {
	Rating  string
	Feeling string
	Notes   string
}

type goalInput struct {
	Name        string
	Target      string
	Description string
}

type settingsInput struct {
	CooldownMinutes      string
	RegretDelayHours     string
	Currency             string
	Timezone             string
	Theme                string
	NotificationsEnabled bool
	StrictMode           bool
}

type Model struct {
	store storage.Provider
	keys  KeyMap
	help  help.Model

	state     constants.SessionState
	activeTab int
	cursor    int

	impulses []models.Impulse
	goals    []models.SavingsGoal
	settings models.Settings
	loc      *time.Location

	now    time.Time
	width  int
	height int

	form         *huh.Form
	logForm      logInput
	decideForm   decideInput
	regretForm   regretInput
	goalForm     goalInput
	settingsForm settingsInput
	target       models.Impulse
	targetGoal   models.SavingsGoal
	deletingGoal bool

	statusMsg string
	errMsg    string
	quitting  bool
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: constants.StatePending,
		now:   time.Now(),
		loc:   time.Local,
	}
	m.refresh()
	return m
}

// refresh reloads everything the tabs render from the store.
func (m *Model) refresh() {
	if settings, err := m.store.GetSettings(); err == nil {
		m.settings = settings
		if loc, err := utils.LoadLocation(settings.Timezone); err == nil {
			m.loc = loc
		}
	}
	if impulses, err := m.store.GetAllImpulses(); err == nil {
		sort.Slice(impulses, func(i, j int) bool {
			return impulses[i].CreatedAt.After(impulses[j].CreatedAt)
		})
		m.impulses = impulses
	} else {
		m.errMsg = err.Error()
	}
	if goals, err := m.store.GetAllGoals(); err == nil {
		sort.Slice(goals, func(i, j int) bool {
			return goals[i].CreatedAt.Before(goals[j].CreatedAt)
		})
		m.goals = goals
	}
	m.clampCursor()
}

// pendingItems returns non-terminal records: cooling down, awaiting a
// decision, or saved for later.
func (m *Model) pendingItems() []models.Impulse {
	var out []models.Impulse
	for _, imp := range m.impulses {
		if !imp.IsTerminal() {
			out = append(out, imp)
		}
	}
	return out
}

// historyItems returns decided records, newest first.
func (m *Model) historyItems() []models.Impulse {
	var out []models.Impulse
	for _, imp := range m.impulses {
		if imp.IsTerminal() {
			out = append(out, imp)
		}
	}
	return out
}

func (m *Model) currentListLen() int {
	switch m.state {
	case constants.StatePending:
		return len(m.pendingItems())
	case constants.StateHistory:
		return len(m.historyItems())
	case constants.StateGoals:
		return len(m.goals)
	}
	return 0
}

func (m *Model) clampCursor() {
	n := m.currentListLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedImpulse() (models.Impulse, bool) {
	var items []models.Impulse
	switch m.state {
	case constants.StatePending:
		items = m.pendingItems()
	case constants.StateHistory:
		items = m.historyItems()
	default:
		return models.Impulse{}, false
	}
	if m.cursor < 0 || m.cursor >= len(items) {
		return models.Impulse{}, false
	}
	return items[m.cursor], true
}

func (m *Model) selectedGoal() (models.SavingsGoal, bool) {
	if m.state != constants.StateGoals || m.cursor < 0 || m.cursor >= len(m.goals) {
		return models.SavingsGoal{}, false
	}
	return m.goals[m.cursor], true
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// ShortHelp implements help.KeyMap.
func (m Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.Tab}
	switch m.state {
	case constants.StatePending:
		bindings = append(bindings, m.keys.Log, m.keys.Enter, m.keys.Skip, m.keys.Buy, m.keys.Delete)
	case constants.StateHistory:
		bindings = append(bindings, m.keys.Regret, m.keys.Delete, m.keys.Clear)
	case constants.StateGoals:
		bindings = append(bindings, m.keys.Add, m.keys.Delete)
	case constants.StateSettings:
		bindings = append(bindings, m.keys.Edit)
	}
	return append(bindings, m.keys.Help, m.keys.Quit)
}

// FullHelp implements help.KeyMap.
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Up, m.keys.Down},
		{m.keys.Log, m.keys.Enter, m.keys.Skip, m.keys.Buy, m.keys.Later, m.keys.Reopen},
		{m.keys.Regret, m.keys.Delete, m.keys.Clear, m.keys.Edit},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m *Model) money(amount float64) string {
	return utils.FormatMoney(amount, m.settings.Currency)
}

func (m *Model) statusLabel(imp models.Impulse) string {
	switch imp.Status {
	case models.StatusCooldown:
		remaining := imp.CooldownRemaining(m.now)
		if remaining <= 0 {
			return dueStyle.Render("ready to decide")
		}
		return fmt.Sprintf("cooling down, %s left", utils.HumanDuration(remaining))
	case models.StatusDecision:
		return dueStyle.Render("ready to decide")
	case models.StatusSaved:
		return "saved for later"
	case models.StatusSkipped:
		return "skipped"
	case models.StatusBought:
		if imp.IsRegretCheckDue(m.now) && !imp.HasRegretFeedback() {
			return dueStyle.Render("bought (regret check due)")
		}
		return "bought"
	}
	return string(imp.Status)
}
