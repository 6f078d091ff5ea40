package stats

import (
	"sort"
	"strings"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
)

// Persona is a heuristic user-category label inferred from what and where
// the user logs. A lookup table of weights, not a learned classifier.
type Persona string

const (
	PersonaUnknown     Persona = "unknown"
	PersonaStudent     Persona = "student"
	PersonaITWorker    Persona = "it_professional"
	PersonaFoodie      Persona = "foodie"
	PersonaFashionista Persona = "fashionista"
	PersonaHomebody    Persona = "homebody"
	PersonaEntertainer Persona = "entertainer"
)

// personaWeights maps category and source-app hits to per-persona score
// contributions. Kept as a table so the weights are testable and tunable
// without code changes.
var personaWeights = map[Persona]struct {
	categories map[models.Category]float64
	sourceApps map[string]float64
}{
	PersonaStudent: {
		categories: map[models.Category]float64{
			models.CategoryFood:    1.0,
			models.CategoryDigital: 1.5,
			models.CategoryHobby:   1.0,
		},
		sourceApps: map[string]float64{"amazon": 1.0, "steam": 2.0},
	},
	PersonaITWorker: {
		categories: map[models.Category]float64{
			models.CategoryDigital: 2.0,
			models.CategoryHobby:   0.5,
		},
		sourceApps: map[string]float64{"amazon": 1.0, "aliexpress": 1.5, "steam": 1.0},
	},
	PersonaFoodie: {
		categories: map[models.Category]float64{
			models.CategoryFood: 2.5,
		},
		sourceApps: map[string]float64{"doordash": 2.0, "ubereats": 2.0},
	},
	PersonaFashionista: {
		categories: map[models.Category]float64{
			models.CategoryShopping: 2.0,
		},
		sourceApps: map[string]float64{"instagram": 1.5, "zalando": 2.0, "shein": 2.0},
	},
	PersonaHomebody: {
		categories: map[models.Category]float64{
			models.CategoryShopping: 1.0,
			models.CategoryHobby:    1.5,
			models.CategoryHealth:   1.0,
		},
		sourceApps: map[string]float64{"ikea": 2.0, "etsy": 1.5},
	},
	PersonaEntertainer: {
		categories: map[models.Category]float64{
			models.CategoryEntertainment: 2.5,
			models.CategoryDigital:       0.5,
		},
		sourceApps: map[string]float64{"ticketmaster": 2.0, "spotify": 1.0},
	},
}

// ClassifyPersona sums weighted category/source-app hits into per-persona
// scores and returns the argmax. Fewer than PersonaMinRecords records, an
// all-zero score table, or a tie for first place resolve to unknown.
func ClassifyPersona(impulses []models.Impulse) Persona {
	if len(impulses) < constants.PersonaMinRecords {
		return PersonaUnknown
	}

	scores := make(map[Persona]float64, len(personaWeights))
	for _, imp := range impulses {
		app := strings.ToLower(imp.SourceApp)
		for persona, w := range personaWeights {
			scores[persona] += w.categories[imp.Category]
			if app != "" {
				scores[persona] += w.sourceApps[app]
			}
		}
	}

	type scored struct {
		persona Persona
		score   float64
	}
	ranked := make([]scored, 0, len(scores))
	for p, s := range scores {
		ranked = append(ranked, scored{p, s})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].persona < ranked[j].persona
	})

	if len(ranked) == 0 || ranked[0].score == 0 {
		return PersonaUnknown
	}
	if len(ranked) > 1 && ranked[0].score == ranked[1].score {
		return PersonaUnknown
	}
	return ranked[0].persona
}
