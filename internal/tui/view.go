package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/stats"
	"github.com/kmcrane/urge/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateLogging, constants.StateDeciding, constants.StateRegret,
		constants.StateAddGoal, constants.StateEditSettings:
		if m.form != nil {
			return docStyle.Render(m.formTitle() + "\n\n" + m.form.View())
		}
	case constants.StateConfirmDelete:
		return m.confirmOverlay(m.confirmDeletePrompt())
	case constants.StateConfirmClear:
		return m.confirmOverlay(fmt.Sprintf("Delete all %d impulses?\nThis cannot be undone.\n\n[y] yes  [n] no", len(m.impulses)))
	}

	var content string
	switch m.state {
	case constants.StatePending:
		content = m.viewPending()
	case constants.StateHistory:
		content = m.viewHistory()
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateGoals:
		content = m.viewGoals()
	case constants.StateSettings:
		content = m.viewSettings()
	}

	sections := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		sections = append(sections, errStyle.Render(m.errMsg))
	} else if m.statusMsg != "" {
		sections = append(sections, statusStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) formTitle() string {
	switch m.state {
	case constants.StateLogging:
		return titleStyle.Render("Log an urge")
	case constants.StateDeciding:
		return titleStyle.Render(fmt.Sprintf("Decide: %s", m.target.Title))
	case constants.StateRegret:
		return titleStyle.Render(fmt.Sprintf("Regret check: %s", m.target.Title))
	case constants.StateAddGoal:
		return titleStyle.Render("New savings goal")
	case constants.StateEditSettings:
		return titleStyle.Render("Edit settings")
	}
	return ""
}

func (m Model) confirmDeletePrompt() string {
	if m.deletingGoal {
		return fmt.Sprintf("Delete goal %q?\n\n[y] yes  [n] no", m.targetGoal.Name)
	}
	return fmt.Sprintf("Delete %q?\n\n[y] yes  [n] no", m.target.Title)
}

func (m Model) confirmOverlay(prompt string) string {
	box := confirmBoxStyle.Render(dangerStyle.Render("Confirm") + "\n\n" + prompt)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewPending() string {
	items := m.pendingItems()
	if len(items) == 0 {
		return mutedStyle.Render("Nothing pending. Press 'a' to log an urge.")
	}

	var b strings.Builder
	for i, imp := range items {
		line := fmt.Sprintf("%-24s %-14s %10s  %s",
			truncate(imp.Title, 24), imp.Category, m.priceLabel(imp), m.statusLabel(imp))
		b.WriteString(m.listLine(i, line))
	}
	return b.String()
}

func (m Model) viewHistory() string {
	items := m.historyItems()
	if len(items) == 0 {
		return mutedStyle.Render("No decisions yet.")
	}

	var b strings.Builder
	for i, imp := range items {
		extra := ""
		switch {
		case imp.Status == models.StatusBought && imp.HasRegretFeedback():
			extra = fmt.Sprintf("  rated %d/5", imp.RegretRating)
		case imp.DecisionAt != nil:
			extra = "  " + mutedStyle.Render(utils.RelativeTime(*imp.DecisionAt, m.now))
		}
		line := fmt.Sprintf("%-24s %-14s %10s  %s%s",
			truncate(imp.Title, 24), imp.Category, m.priceLabel(imp), m.statusLabel(imp), extra)
		b.WriteString(m.listLine(i, line))
	}
	return b.String()
}

func (m Model) viewStats() string {
	summary := stats.Summarize(m.impulses)
	streaks := stats.ComputeStreaks(m.impulses, m.now, m.loc)
	score := stats.ImpactScore(m.impulses, m.now, m.loc)
	persona := stats.ClassifyPersona(m.impulses)

	var b strings.Builder
	b.WriteString(titleStyle.Render("All time") + "\n")
	b.WriteString(fmt.Sprintf("  Logged %d · Skipped %d · Bought %d · Regretted %d\n",
		summary.Logged, summary.Skipped, summary.Bought, summary.Regretted))
	b.WriteString(fmt.Sprintf("  Saved %s · Regretted spend %s\n",
		m.money(summary.MoneySaved), m.money(summary.MoneyRegretted)))
	b.WriteString(fmt.Sprintf("  Skip streak: %d day(s), best %d\n", streaks.Current, streaks.Longest))
	b.WriteString(fmt.Sprintf("  Impact score: %.0f/100\n", score))
	if persona != stats.PersonaUnknown {
		b.WriteString(fmt.Sprintf("  Persona: %s\n", persona))
	}

	categories := stats.ByCategory(m.impulses)
	if len(categories) > 0 {
		b.WriteString("\n" + titleStyle.Render("By category") + "\n")
		for _, c := range categories {
			b.WriteString(fmt.Sprintf("  %-14s logged %-3d skipped %-3d bought %-3d regret %.0f%%\n",
				c.Category, c.Logged, c.Skipped, c.Bought, c.RegretRate))
		}
	}
	return b.String()
}

func (m Model) viewGoals() string {
	if len(m.goals) == 0 {
		return mutedStyle.Render("No savings goals. Press 'a' to add one.")
	}

	saved := stats.TotalSaved(m.impulses)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total saved from skips: %s\n\n", m.money(saved)))
	for i, goal := range m.goals {
		marker := " "
		if goal.IsAchieved(saved) {
			marker = "✓"
		}
		line := fmt.Sprintf("%s %-20s %s %s / %s",
			marker, truncate(goal.Name, 20), progressBar(goal.Progress(saved), 20),
			m.money(min(saved, goal.Target)), m.money(goal.Target))
		b.WriteString(m.listLine(i, line))
	}
	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Cool-down:       %d minutes\n", m.settings.CooldownMinutes))
	b.WriteString(fmt.Sprintf("  Regret check:    %d hours after a buy\n", m.settings.RegretDelayHours))
	b.WriteString(fmt.Sprintf("  Currency:        %s\n", m.settings.Currency))
	b.WriteString(fmt.Sprintf("  Timezone:        %s\n", m.settings.Timezone))
	b.WriteString(fmt.Sprintf("  Theme:           %s\n", m.settings.Theme))
	b.WriteString(fmt.Sprintf("  Notifications:   %v\n", m.settings.NotificationsEnabled))
	b.WriteString(fmt.Sprintf("  Strict mode:     %v\n", m.settings.StrictMode))
	b.WriteString("\n" + mutedStyle.Render("Press 'e' to edit."))
	return b.String()
}

func (m Model) listLine(i int, line string) string {
	if i == m.cursor {
		return cursorStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m Model) priceLabel(imp models.Impulse) string {
	if imp.Price <= 0 {
		return mutedStyle.Render("—")
	}
	return m.money(imp.Price)
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
