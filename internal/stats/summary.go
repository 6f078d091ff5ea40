// Package stats computes derived views over the impulse collection. Every
// function is a pure, deterministic fold: empty input yields zero values,
// missing optional fields count as zero, and nothing here ever errors.
package stats

import (
	"time"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
)

// Summary aggregates one time window of activity.
type Summary struct {
	Logged         int     `json:"logged"`
	Skipped        int     `json:"skipped"`
	Bought         int     `json:"bought"`
	Regretted      int     `json:"regretted"`
	MoneySaved     float64 `json:"money_saved"`
	MoneyRegretted float64 `json:"money_regretted"`
	RegretRate     float64 `json:"regret_rate"` // percent, 0 when nothing bought
}

// IsRegretted is the canonical regret predicate: an explicit regret feeling,
// or a rating at or above the threshold on the 1-5 scale.
func IsRegretted(imp models.Impulse) bool {
	return imp.FinalFeeling == models.FeelingRegret || imp.RegretRating >= constants.RegretThreshold
}

// RatingFromScore converts a 0-100 regret score to the internal 1-5 scale.
// Scores above 50 land at or above the regret threshold.
func RatingFromScore(score int) int {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	rating := score/25 + 1
	if rating > 5 {
		rating = 5
	}
	return rating
}

// FilterWindow returns the records whose CreatedAt falls in [start, end).
func FilterWindow(impulses []models.Impulse, start, end time.Time) []models.Impulse {
	var out []models.Impulse
	for _, imp := range impulses {
		if imp.CreatedAt.Before(start) || !imp.CreatedAt.Before(end) {
			continue
		}
		out = append(out, imp)
	}
	return out
}

// Summarize folds a record collection into a Summary. Callers wanting a
// windowed view filter first with FilterWindow.
func Summarize(impulses []models.Impulse) Summary {
	var s Summary
	for _, imp := range impulses {
		s.Logged++
		switch imp.Status {
		case models.StatusSkipped:
			s.Skipped++
			s.MoneySaved += imp.Price
		case models.StatusBought:
			s.Bought++
			if IsRegretted(imp) {
				s.Regretted++
				s.MoneyRegretted += imp.Price
			}
		}
	}
	if s.Bought > 0 {
		s.RegretRate = float64(s.Regretted) / float64(s.Bought) * 100
	}
	return s
}

// SummarizeWindow is Summarize over [start, end).
func SummarizeWindow(impulses []models.Impulse, start, end time.Time) Summary {
	return Summarize(FilterWindow(impulses, start, end))
}

// DaySummary summarizes the calendar day containing t in the given location.
func DaySummary(impulses []models.Impulse, t time.Time, loc *time.Location) Summary {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return SummarizeWindow(impulses, start, start.AddDate(0, 0, 1))
}

// WeekSummary summarizes the trailing seven days ending after t.
func WeekSummary(impulses []models.Impulse, t time.Time, loc *time.Location) Summary {
	local := t.In(loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return SummarizeWindow(impulses, end.AddDate(0, 0, -7), end)
}

// TotalSaved returns the cumulative skipped-price sum, the progress cursor
// for savings goals.
func TotalSaved(impulses []models.Impulse) float64 {
	var total float64
	for _, imp := range impulses {
		if imp.Status == models.StatusSkipped {
			total += imp.Price
		}
	}
	return total
}
