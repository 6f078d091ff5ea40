package stats

import (
	"sort"

	"github.com/kmcrane/urge/internal/models"
)

// CategoryStats aggregates per-category activity.
type CategoryStats struct {
	Category   models.Category `json:"category"`
	Logged     int             `json:"logged"`
	Skipped    int             `json:"skipped"`
	Bought     int             `json:"bought"`
	Regretted  int             `json:"regretted"`
	RegretRate float64         `json:"regret_rate"`
}

// ByCategory folds the collection into per-category stats, returned in the
// fixed category display order. Categories with no activity are omitted.
func ByCategory(impulses []models.Impulse) []CategoryStats {
	byCat := make(map[models.Category]*CategoryStats)
	for _, imp := range impulses {
		cs, ok := byCat[imp.Category]
		if !ok {
			cs = &CategoryStats{Category: imp.Category}
			byCat[imp.Category] = cs
		}
		cs.Logged++
		switch imp.Status {
		case models.StatusSkipped:
			cs.Skipped++
		case models.StatusBought:
			cs.Bought++
			if IsRegretted(imp) {
				cs.Regretted++
			}
		}
	}

	var out []CategoryStats
	for _, cat := range models.Categories {
		cs, ok := byCat[cat]
		if !ok {
			continue
		}
		if cs.Bought > 0 {
			cs.RegretRate = float64(cs.Regretted) / float64(cs.Bought) * 100
		}
		out = append(out, *cs)
	}
	return out
}

// WeakCategories returns the top-n categories by regret rate, ties broken by
// logged count. These are the categories the user most often regrets.
func WeakCategories(impulses []models.Impulse, n int) []CategoryStats {
	cats := ByCategory(impulses)
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].RegretRate != cats[j].RegretRate {
			return cats[i].RegretRate > cats[j].RegretRate
		}
		return cats[i].Logged > cats[j].Logged
	})
	if n > 0 && len(cats) > n {
		cats = cats[:n]
	}
	return cats
}
