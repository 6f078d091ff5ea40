package models

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusCooldown Status = "cooldown"
	StatusDecision Status = "decision"
	StatusSkipped  Status = "skipped"
	StatusBought   Status = "bought"
	StatusSaved    Status = "saved"
)

type Category string

const (
	CategoryFood          Category = "food"
	CategoryShopping      Category = "shopping"
	CategoryDigital       Category = "digital"
	CategoryEntertainment Category = "entertainment"
	CategoryTransport     Category = "transport"
	CategoryHealth        Category = "health"
	CategoryHobby         Category = "hobby"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood, CategoryShopping, CategoryDigital, CategoryEntertainment,
	CategoryTransport, CategoryHealth, CategoryHobby, CategoryOther,
}

type Emotion string

const (
	EmotionNone     Emotion = "none"
	EmotionStressed Emotion = "stressed"
	EmotionBored    Emotion = "bored"
	EmotionSad      Emotion = "sad"
	EmotionExcited  Emotion = "excited"
	EmotionAnxious  Emotion = "anxious"
	EmotionTired    Emotion = "tired"
)

type Urgency string

const (
	UrgencyEssential  Urgency = "essential"
	UrgencyNiceToHave Urgency = "nice_to_have"
	UrgencyImpulse    Urgency = "impulse"
)

type SkippedFeeling string

const (
	SkippedRelieved     SkippedFeeling = "relieved"
	SkippedStillCraving SkippedFeeling = "still_craving"
	SkippedNeutral      SkippedFeeling = "neutral"
)

type FinalFeeling string

const (
	FeelingRegret  FinalFeeling = "regret"
	FeelingWorthIt FinalFeeling = "worth_it"
	FeelingNeutral FinalFeeling = "neutral"
)

// Impulse is one logged purchase urge and its full lifecycle state.
type Impulse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Price    float64  `json:"price,omitempty"` // 0 means not recorded
	Notes    string   `json:"notes,omitempty"`

	Emotion      Emotion `json:"emotion"`
	Urgency      Urgency `json:"urgency"`
	UrgeStrength int     `json:"urge_strength,omitempty"` // 1-10, 0 = unset
	Location     string  `json:"location,omitempty"`
	PhotoRef     string  `json:"photo_ref,omitempty"`
	SourceApp    string  `json:"source_app,omitempty"`

	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ReviewAt      time.Time  `json:"review_at"`
	DecisionAt    *time.Time `json:"decision_at,omitempty"`
	RegretCheckAt *time.Time `json:"regret_check_at,omitempty"`

	SkippedFeeling SkippedFeeling `json:"skipped_feeling,omitempty"`
	FinalFeeling   FinalFeeling   `json:"final_feeling,omitempty"`
	RegretRating   int            `json:"regret_rating,omitempty"` // 1-5, 0 = unset
	RegretNotes    string         `json:"regret_notes,omitempty"`
}

func (i *Impulse) Validate() error {
	if i.Title == "" {
		return fmt.Errorf("impulse title cannot be empty")
	}
	if i.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if i.UrgeStrength < 0 || i.UrgeStrength > 10 {
		return fmt.Errorf("urge strength must be between 1 and 10")
	}
	if i.RegretRating < 0 || i.RegretRating > 5 {
		return fmt.Errorf("regret rating must be between 1 and 5")
	}
	if i.ReviewAt.Before(i.CreatedAt) {
		return fmt.Errorf("review time cannot precede creation time")
	}
	if i.DecisionAt != nil && i.RegretCheckAt != nil && i.RegretCheckAt.Before(*i.DecisionAt) {
		return fmt.Errorf("regret check cannot precede the decision")
	}
	return nil
}

// IsTerminal reports whether a decision has been recorded for good.
// Saved records can be reopened, so they are not terminal.
func (i *Impulse) IsTerminal() bool {
	return i.Status == StatusSkipped || i.Status == StatusBought
}

// IsDecisionDue reports whether the cool-down has elapsed at the given time.
func (i *Impulse) IsDecisionDue(now time.Time) bool {
	return i.Status == StatusCooldown && !i.ReviewAt.After(now)
}

// IsRegretCheckDue reports whether the regret check is due and unanswered.
// The record does not distinguish "not yet due" from "due but unanswered"
// except by this comparison.
func (i *Impulse) IsRegretCheckDue(now time.Time) bool {
	return i.Status == StatusBought && i.RegretCheckAt != nil && !i.RegretCheckAt.After(now)
}

// HasRegretFeedback reports whether regret feedback has been recorded.
func (i *Impulse) HasRegretFeedback() bool {
	return i.FinalFeeling != "" || i.RegretRating > 0
}

// CooldownRemaining returns the time left until the record can be decided,
// re-derived from ReviewAt on every call so missed ticks self-correct.
func (i *Impulse) CooldownRemaining(now time.Time) time.Duration {
	if i.Status != StatusCooldown {
		return 0
	}
	remaining := i.ReviewAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ParseCategory converts a user-supplied string to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s", s)
}

// ParseUrgency converts a user-supplied string to an Urgency.
func ParseUrgency(s string) (Urgency, error) {
	switch Urgency(s) {
	case UrgencyEssential, UrgencyNiceToHave, UrgencyImpulse:
		return Urgency(s), nil
	}
	return "", fmt.Errorf("invalid urgency: %s", s)
}

// ParseEmotion converts a user-supplied string to an Emotion.
// An empty string maps to EmotionNone.
func ParseEmotion(s string) (Emotion, error) {
	if s == "" {
		return EmotionNone, nil
	}
	switch Emotion(s) {
	case EmotionNone, EmotionStressed, EmotionBored, EmotionSad, EmotionExcited, EmotionAnxious, EmotionTired:
		return Emotion(s), nil
	}
	return "", fmt.Errorf("invalid emotion: %s", s)
}
