package stats

import (
	"time"

	"github.com/kmcrane/urge/internal/models"
)

// ImpactScore is the gamified 0-100 restraint score: current streak times 2,
// plus skip rate times 0.4, plus the longest streak (capped at 30) times 0.5,
// clamped to [0, 100]. Purely illustrative weighting.
func ImpactScore(impulses []models.Impulse, now time.Time, loc *time.Location) float64 {
	streaks := ComputeStreaks(impulses, now, loc)

	decided := 0
	skipped := 0
	for _, imp := range impulses {
		switch imp.Status {
		case models.StatusSkipped:
			decided++
			skipped++
		case models.StatusBought:
			decided++
		}
	}

	var skipRate float64
	if decided > 0 {
		skipRate = float64(skipped) / float64(decided) * 100
	}

	longest := streaks.Longest
	if longest > 30 {
		longest = 30
	}

	score := float64(streaks.Current)*2 + skipRate*0.4 + float64(longest)*0.5
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
