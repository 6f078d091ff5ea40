package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
)

// PatternKind is the coarse signal a recurring pattern was grouped by.
type PatternKind string

const (
	PatternCategory  PatternKind = "category"
	PatternWeekday   PatternKind = "weekday"
	PatternHour      PatternKind = "hour"
	PatternPrice     PatternKind = "price"
	PatternSourceApp PatternKind = "source_app"
)

// PatternStrength tiers a pattern by occurrence count.
type PatternStrength string

const (
	StrengthWeak       PatternStrength = "weak"
	StrengthModerate   PatternStrength = "moderate"
	StrengthStrong     PatternStrength = "strong"
	StrengthVeryStrong PatternStrength = "very_strong"
)

// Pattern is a detected repeated-purchase signal.
type Pattern struct {
	Kind        PatternKind     `json:"kind"`
	Key         string          `json:"key"` // e.g. "shopping", "Saturday", "21:00", "$10-$50"
	Occurrences int             `json:"occurrences"`
	Strength    PatternStrength `json:"strength"`
	Confidence  float64         `json:"confidence"` // 0-1, grows with sample size
	NextAt      *time.Time      `json:"next_at,omitempty"`
}

func strengthFor(count int) PatternStrength {
	switch {
	case count >= 12:
		return StrengthVeryStrong
	case count >= 8:
		return StrengthStrong
	case count >= 5:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// confidenceFor grows with sample size and saturates at 0.95. Not a fitted
// model, just a monotone ramp so small groups read as tentative.
func confidenceFor(count, total int) float64 {
	if total == 0 {
		return 0
	}
	c := float64(count) / float64(total)
	c += float64(count) * 0.04
	if c > 0.95 {
		c = 0.95
	}
	return c
}

func priceBucket(price float64) string {
	switch {
	case price <= 0:
		return "unpriced"
	case price < 10:
		return "under $10"
	case price < 50:
		return "$10-$50"
	case price < 200:
		return "$50-$200"
	default:
		return "over $200"
	}
}

// groupKeys returns the signal keys a record contributes to.
func groupKeys(imp models.Impulse, loc *time.Location) map[PatternKind]string {
	local := imp.CreatedAt.In(loc)
	keys := map[PatternKind]string{
		PatternCategory: string(imp.Category),
		PatternWeekday:  local.Weekday().String(),
		PatternHour:     fmt.Sprintf("%02d:00", local.Hour()),
		PatternPrice:    priceBucket(imp.Price),
	}
	if imp.SourceApp != "" {
		keys[PatternSourceApp] = imp.SourceApp
	}
	return keys
}

// DetectPatterns groups records by coarse signals and reports the groups
// whose occurrence count clears the threshold. The next-occurrence estimate
// is last occurrence plus the mean interval between occurrences, a plain
// extrapolation.
func DetectPatterns(impulses []models.Impulse, loc *time.Location) []Pattern {
	type group struct {
		kind  PatternKind
		key   string
		times []time.Time
	}
	groups := make(map[string]*group)

	for _, imp := range impulses {
		for kind, key := range groupKeys(imp, loc) {
			id := string(kind) + "|" + key
			g, ok := groups[id]
			if !ok {
				g = &group{kind: kind, key: key}
				groups[id] = g
			}
			g.times = append(g.times, imp.CreatedAt)
		}
	}

	var out []Pattern
	for _, g := range groups {
		if len(g.times) < constants.PatternMinOccurrences {
			continue
		}
		sort.Slice(g.times, func(i, j int) bool { return g.times[i].Before(g.times[j]) })

		p := Pattern{
			Kind:        g.kind,
			Key:         g.key,
			Occurrences: len(g.times),
			Strength:    strengthFor(len(g.times)),
			Confidence:  confidenceFor(len(g.times), len(impulses)),
		}

		if len(g.times) >= 2 {
			first := g.times[0]
			last := g.times[len(g.times)-1]
			mean := last.Sub(first) / time.Duration(len(g.times)-1)
			if mean > 0 {
				next := last.Add(mean)
				p.NextAt = &next
			}
		}

		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Key < out[j].Key
	})
	return out
}
