package stats

import (
	"sort"
	"time"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
)

// Streaks holds the consecutive-day skip runs.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// skipDays buckets skipped records into local calendar day keys.
func skipDays(impulses []models.Impulse, loc *time.Location) map[string]bool {
	days := make(map[string]bool)
	for _, imp := range impulses {
		if imp.Status != models.StatusSkipped {
			continue
		}
		days[imp.CreatedAt.In(loc).Format(constants.DateFormat)] = true
	}
	return days
}

// ComputeStreaks scans the skip-day set for consecutive runs. The current
// streak counts back from today (the day containing now); a day without a
// skip breaks it. The longest streak may end anywhere.
func ComputeStreaks(impulses []models.Impulse, now time.Time, loc *time.Location) Streaks {
	days := skipDays(impulses, loc)
	if len(days) == 0 {
		return Streaks{}
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	var s Streaks
	for d := today; days[d.Format(constants.DateFormat)]; d = d.AddDate(0, 0, -1) {
		s.Current++
	}

	// Longest run: sort the day keys and walk for consecutive dates.
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	run := 1
	s.Longest = 1
	for i := 1; i < len(keys); i++ {
		prev, err1 := time.ParseInLocation(constants.DateFormat, keys[i-1], loc)
		cur, err2 := time.ParseInLocation(constants.DateFormat, keys[i], loc)
		if err1 == nil && err2 == nil && prev.AddDate(0, 0, 1).Equal(cur) {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}

	return s
}
