package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/lifecycle"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/utils"
)

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func optionalMoney(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Categories))
	for _, c := range models.Categories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}
	return opts
}

func newLogForm(fm *logInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to buy?").
				Value(&fm.Title).
				Validate(nonEmpty),
			huh.NewInput().
				Title("Price (optional)").
				Value(&fm.Price).
				Validate(optionalMoney),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("How essential is it?").
				Options(
					huh.NewOption("Essential", string(models.UrgencyEssential)),
					huh.NewOption("Nice to have", string(models.UrgencyNiceToHave)),
					huh.NewOption("Pure impulse", string(models.UrgencyImpulse)),
				).
				Value(&fm.Urgency),
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(
					huh.NewOption("Nothing in particular", string(models.EmotionNone)),
					huh.NewOption("Stressed", string(models.EmotionStressed)),
					huh.NewOption("Bored", string(models.EmotionBored)),
					huh.NewOption("Sad", string(models.EmotionSad)),
					huh.NewOption("Excited", string(models.EmotionExcited)),
					huh.NewOption("Anxious", string(models.EmotionAnxious)),
					huh.NewOption("Tired", string(models.EmotionTired)),
				).
				Value(&fm.Emotion),
			huh.NewText().
				Title("Notes (optional)").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func newDecideForm(fm *decideInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What's the verdict?").
				Options(
					huh.NewOption("Skip it", string(lifecycle.DecisionSkip)),
					huh.NewOption("Buy it", string(lifecycle.DecisionBuy)),
					huh.NewOption("Save for later", string(lifecycle.DecisionLater)),
				).
				Value(&fm.Choice),
			huh.NewSelect[string]().
				Title("If skipping, how does it feel?").
				Options(
					huh.NewOption("Relieved", string(models.SkippedRelieved)),
					huh.NewOption("Still craving it", string(models.SkippedStillCraving)),
					huh.NewOption("Neutral", string(models.SkippedNeutral)),
				).
				Value(&fm.Feeling),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRegretForm(fm *regretInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How much do you regret this purchase?").
				Options(
					huh.NewOption("1 - Not at all", "1"),
					huh.NewOption("2 - A little", "2"),
					huh.NewOption("3 - Somewhat", "3"),
					huh.NewOption("4 - Quite a bit", "4"),
					huh.NewOption("5 - Completely", "5"),
				).
				Value(&fm.Rating),
			huh.NewSelect[string]().
				Title("Overall, was it...").
				Options(
					huh.NewOption("Worth it", string(models.FeelingWorthIt)),
					huh.NewOption("A regret", string(models.FeelingRegret)),
					huh.NewOption("Neutral", string(models.FeelingNeutral)),
				).
				Value(&fm.Feeling),
			huh.NewText().
				Title("Notes (optional)").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func newGoalForm(fm *goalInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal name").
				Value(&fm.Name).
				Validate(nonEmpty),
			huh.NewInput().
				Title("Target amount").
				Value(&fm.Target).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					if v <= 0 {
						return fmt.Errorf("must be greater than zero")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description (optional)").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

func newSettingsForm(fm *settingsInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cool-down (minutes)").
				Value(&fm.CooldownMinutes).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("must be a positive number of minutes")
					}
					return nil
				}),
			huh.NewInput().
				Title("Regret check delay (hours)").
				Value(&fm.RegretDelayHours).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("must be a positive number of hours")
					}
					return nil
				}),
			huh.NewInput().
				Title("Currency code").
				Value(&fm.Currency).
				Validate(nonEmpty),
			huh.NewInput().
				Title("Timezone (IANA name or 'Local')").
				Description("Examples: Local, UTC, America/New_York, Europe/London").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(s) {
						return fmt.Errorf("invalid timezone name")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).
				Value(&fm.Theme),
			huh.NewConfirm().
				Title("Enable Notifications").
				Value(&fm.NotificationsEnabled),
			huh.NewConfirm().
				Title("Strict Mode (no early decisions)").
				Value(&fm.StrictMode),
		),
	).WithTheme(huh.ThemeDracula())
}

// submitLog turns completed form input into a fresh cooldown record.
func (m *Model) submitLog() {
	price := 0.0
	if s := strings.TrimSpace(m.logForm.Price); s != "" {
		price, _ = strconv.ParseFloat(s, 64)
	}

	cooldown := time.Duration(m.settings.CooldownMinutes) * time.Minute
	imp := lifecycle.NewImpulse(uuid.NewString(), strings.TrimSpace(m.logForm.Title),
		models.Category(m.logForm.Category), price, cooldown, time.Now())
	imp.Urgency = models.Urgency(m.logForm.Urgency)
	imp.Emotion = models.Emotion(m.logForm.Emotion)
	imp.Notes = strings.TrimSpace(m.logForm.Notes)

	if err := imp.Validate(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.store.AddImpulse(imp); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("Logged %q. Decide at %s.", imp.Title, imp.ReviewAt.In(m.loc).Format(constants.TimeFormat))
	m.refresh()
}

// submitDecide applies the chosen verdict to the targeted record.
func (m *Model) submitDecide() {
	feeling := models.SkippedFeeling("")
	if m.decideForm.Choice == string(lifecycle.DecisionSkip) {
		feeling = models.SkippedFeeling(m.decideForm.Feeling)
	}
	regretDelay := time.Duration(m.settings.RegretDelayHours) * time.Hour

	updated, err := lifecycle.RecordDecision(m.target, lifecycle.Decision(m.decideForm.Choice), feeling, regretDelay, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.store.UpdateImpulse(updated); err != nil {
		m.errMsg = err.Error()
		return
	}

	switch updated.Status {
	case models.StatusSkipped:
		if updated.Price > 0 {
			m.statusMsg = fmt.Sprintf("Skipped %q. %s saved.", updated.Title, m.money(updated.Price))
		} else {
			m.statusMsg = fmt.Sprintf("Skipped %q.", updated.Title)
		}
	case models.StatusBought:
		m.statusMsg = fmt.Sprintf("Bought %q. Regret check in %dh.", updated.Title, m.settings.RegretDelayHours)
	case models.StatusSaved:
		m.statusMsg = fmt.Sprintf("Saved %q for later.", updated.Title)
	}
	m.refresh()
}

// submitRegret records regret feedback for the targeted purchase.
func (m *Model) submitRegret() {
	rating, _ := strconv.Atoi(m.regretForm.Rating)
	updated, err := lifecycle.RecordRegret(m.target, rating,
		models.FinalFeeling(m.regretForm.Feeling), strings.TrimSpace(m.regretForm.Notes), time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.store.UpdateImpulse(updated); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("Feedback recorded for %q.", updated.Title)
	m.refresh()
}

// submitGoal creates a savings goal from completed form input.
func (m *Model) submitGoal() {
	target, _ := strconv.ParseFloat(strings.TrimSpace(m.goalForm.Target), 64)
	goal := models.SavingsGoal{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(m.goalForm.Name),
		Target:      target,
		Description: strings.TrimSpace(m.goalForm.Description),
		CreatedAt:   time.Now(),
	}
	if err := goal.Validate(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.store.AddGoal(goal); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("Goal %q added.", goal.Name)
	m.refresh()
}

// submitSettings saves the edited settings and reloads the timezone.
func (m *Model) submitSettings() {
	cooldown, _ := strconv.Atoi(m.settingsForm.CooldownMinutes)
	regretDelay, _ := strconv.Atoi(m.settingsForm.RegretDelayHours)

	settings := m.settings
	settings.CooldownMinutes = cooldown
	settings.RegretDelayHours = regretDelay
	settings.Currency = strings.ToUpper(strings.TrimSpace(m.settingsForm.Currency))
	settings.Timezone = strings.TrimSpace(m.settingsForm.Timezone)
	settings.Theme = m.settingsForm.Theme
	settings.NotificationsEnabled = m.settingsForm.NotificationsEnabled
	settings.StrictMode = m.settingsForm.StrictMode

	if err := m.store.SaveSettings(settings); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = "Settings saved."
	m.refresh()
}

// openDecideForm gates early decisions the same way the CLI does: strict mode
// blocks them outright.
func (m *Model) openDecideForm(imp models.Impulse) bool {
	if imp.Status == models.StatusCooldown && imp.CooldownRemaining(m.now) > 0 && m.settings.StrictMode {
		m.errMsg = fmt.Sprintf("Strict mode: %s left on the cool-down.", utils.HumanDuration(imp.CooldownRemaining(m.now)))
		return false
	}
	m.target = imp
	m.decideForm = decideInput{
		Choice:  string(lifecycle.DecisionSkip),
		Feeling: string(models.SkippedNeutral),
	}
	m.form = newDecideForm(&m.decideForm)
	m.state = constants.StateDeciding
	return true
}

func (m *Model) openRegretForm(imp models.Impulse) bool {
	if !imp.IsRegretCheckDue(m.now) {
		if imp.Status == models.StatusBought && imp.RegretCheckAt != nil {
			m.errMsg = fmt.Sprintf("Regret check not due until %s.", utils.RelativeTime(*imp.RegretCheckAt, m.now))
		} else {
			m.errMsg = "No regret check pending for that one."
		}
		return false
	}
	if imp.HasRegretFeedback() {
		m.errMsg = "Feedback already recorded."
		return false
	}
	m.target = imp
	m.regretForm = regretInput{Rating: "1", Feeling: string(models.FeelingWorthIt)}
	m.form = newRegretForm(&m.regretForm)
	m.state = constants.StateRegret
	return true
}
