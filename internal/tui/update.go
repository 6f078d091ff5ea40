package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.promoteDue()
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.state {
		case constants.StateLogging, constants.StateDeciding, constants.StateRegret,
			constants.StateAddGoal, constants.StateEditSettings:
			return m.updateForm(msg)
		case constants.StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case constants.StateConfirmClear:
			return m.updateConfirmClear(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

// promoteDue advances cooldown records whose review time has passed. The
// check runs every tick against stored timestamps, so records that became due
// while the machine was asleep promote on the first tick after resume.
func (m *Model) promoteDue() {
	due := lifecycle.DuePromotions(m.impulses, m.now)
	if len(due) == 0 {
		return
	}
	promoted := lifecycle.PromoteDue(m.impulses, m.now)
	if err := m.store.SaveAllImpulses(promoted); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.impulses = promoted
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case constants.StateLogging:
			m.submitLog()
		case constants.StateDeciding:
			m.submitDecide()
		case constants.StateRegret:
			m.submitRegret()
		case constants.StateAddGoal:
			m.submitGoal()
		case constants.StateEditSettings:
			m.submitSettings()
		}
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}

// closeForm returns to the tab the form was opened from.
func (m *Model) closeForm() {
	m.form = nil
	m.state = tabStates[m.activeTab]
	m.clampCursor()
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.deletingGoal {
			if err := m.store.DeleteGoal(m.targetGoal.ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Goal %q deleted.", m.targetGoal.Name)
			}
		} else {
			if err := m.store.DeleteImpulse(m.target.ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Deleted %q.", m.target.Title)
			}
		}
		m.refresh()
		m.state = tabStates[m.activeTab]
	case "n", "N", "esc":
		m.state = tabStates[m.activeTab]
	}
	return m, nil
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.store.ClearImpulses(); err != nil {
			m.errMsg = err.Error()
		} else {
			m.statusMsg = "All impulses deleted."
		}
		m.refresh()
		m.state = tabStates[m.activeTab]
	case "n", "N", "esc":
		m.state = tabStates[m.activeTab]
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.activeTab = (m.activeTab + 1) % len(tabNames)
		m.state = tabStates[m.activeTab]
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.activeTab = (m.activeTab - 1 + len(tabNames)) % len(tabNames)
		m.state = tabStates[m.activeTab]
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.currentListLen()-1 {
			m.cursor++
		}
		return m, nil
	}

	switch m.state {
	case constants.StatePending:
		return m.updatePendingKeys(msg)
	case constants.StateHistory:
		return m.updateHistoryKeys(msg)
	case constants.StateGoals:
		return m.updateGoalKeys(msg)
	case constants.StateSettings:
		if key.Matches(msg, m.keys.Edit) {
			m.settingsForm = settingsInput{
				CooldownMinutes:      fmt.Sprintf("%d", m.settings.CooldownMinutes),
				RegretDelayHours:     fmt.Sprintf("%d", m.settings.RegretDelayHours),
				Currency:             m.settings.Currency,
				Timezone:             m.settings.Timezone,
				Theme:                m.settings.Theme,
				NotificationsEnabled: m.settings.NotificationsEnabled,
				StrictMode:           m.settings.StrictMode,
			}
			m.form = newSettingsForm(&m.settingsForm)
			m.state = constants.StateEditSettings
			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m Model) updatePendingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Log):
		m.logForm = logInput{
			Category: string(models.CategoryOther),
			Urgency:  string(models.UrgencyImpulse),
			Emotion:  string(models.EmotionNone),
		}
		m.form = newLogForm(&m.logForm)
		m.state = constants.StateLogging
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Enter):
		imp, ok := m.selectedImpulse()
		if !ok {
			return m, nil
		}
		if imp.Status == models.StatusSaved {
			m.reopen(imp)
			return m, nil
		}
		if m.openDecideForm(imp) {
			return m, m.form.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		return m.quickDecide(lifecycle.DecisionSkip)

	case key.Matches(msg, m.keys.Buy):
		return m.quickDecide(lifecycle.DecisionBuy)

	case key.Matches(msg, m.keys.Later):
		return m.quickDecide(lifecycle.DecisionLater)

	case key.Matches(msg, m.keys.Reopen):
		if imp, ok := m.selectedImpulse(); ok {
			m.reopen(imp)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if imp, ok := m.selectedImpulse(); ok {
			m.target = imp
			m.deletingGoal = false
			m.state = constants.StateConfirmDelete
		}
		return m, nil
	}
	return m, nil
}

// quickDecide applies a one-key verdict with default feelings. The full form
// (enter) is there when more detail is wanted.
func (m Model) quickDecide(decision lifecycle.Decision) (tea.Model, tea.Cmd) {
	imp, ok := m.selectedImpulse()
	if !ok {
		return m, nil
	}
	if imp.Status == models.StatusCooldown && imp.CooldownRemaining(m.now) > 0 && m.settings.StrictMode {
		m.errMsg = "Strict mode: the cool-down has not finished."
		return m, nil
	}

	m.target = imp
	m.decideForm = decideInput{Choice: string(decision), Feeling: string(models.SkippedNeutral)}
	m.submitDecide()
	return m, nil
}

func (m *Model) reopen(imp models.Impulse) {
	updated, err := lifecycle.Reopen(imp)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.store.UpdateImpulse(updated); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("Reopened %q.", updated.Title)
	m.refresh()
}

func (m Model) updateHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Regret), key.Matches(msg, m.keys.Enter):
		imp, ok := m.selectedImpulse()
		if !ok {
			return m, nil
		}
		if m.openRegretForm(imp) {
			return m, m.form.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if imp, ok := m.selectedImpulse(); ok {
			m.target = imp
			m.deletingGoal = false
			m.state = constants.StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if len(m.impulses) > 0 {
			m.state = constants.StateConfirmClear
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateGoalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.goalForm = goalInput{}
		m.form = newGoalForm(&m.goalForm)
		m.state = constants.StateAddGoal
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if goal, ok := m.selectedGoal(); ok {
			m.targetGoal = goal
			m.deletingGoal = true
			m.state = constants.StateConfirmDelete
		}
		return m, nil
	}
	return m, nil
}
