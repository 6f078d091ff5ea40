package stats

import (
	"testing"

	"github.com/kmcrane/urge/internal/models"
)

func personaImpulse(cat models.Category, app string) models.Impulse {
	return models.Impulse{Category: cat, SourceApp: app, Status: models.StatusBought, CreatedAt: statsNow}
}

func TestClassifyPersona(t *testing.T) {
	t.Run("empty collection is unknown", func(t *testing.T) {
		if got := ClassifyPersona(nil); got != PersonaUnknown {
			t.Errorf("ClassifyPersona(nil) = %s, want unknown", got)
		}
	})

	t.Run("below minimum sample is unknown", func(t *testing.T) {
		impulses := []models.Impulse{
			personaImpulse(models.CategoryFood, "doordash"),
			personaImpulse(models.CategoryFood, "doordash"),
			personaImpulse(models.CategoryFood, "doordash"),
			personaImpulse(models.CategoryFood, "doordash"),
		}
		if got := ClassifyPersona(impulses); got != PersonaUnknown {
			t.Errorf("ClassifyPersona(4 records) = %s, want unknown", got)
		}
	})

	t.Run("food delivery heavy user classifies as foodie", func(t *testing.T) {
		var impulses []models.Impulse
		for i := 0; i < 6; i++ {
			impulses = append(impulses, personaImpulse(models.CategoryFood, "doordash"))
		}
		if got := ClassifyPersona(impulses); got != PersonaFoodie {
			t.Errorf("ClassifyPersona = %s, want foodie", got)
		}
	})

	t.Run("digital heavy user classifies as it_professional", func(t *testing.T) {
		var impulses []models.Impulse
		for i := 0; i < 6; i++ {
			impulses = append(impulses, personaImpulse(models.CategoryDigital, ""))
		}
		if got := ClassifyPersona(impulses); got != PersonaITWorker {
			t.Errorf("ClassifyPersona = %s, want it_professional", got)
		}
	})

	t.Run("no matching weights is unknown", func(t *testing.T) {
		var impulses []models.Impulse
		for i := 0; i < 6; i++ {
			impulses = append(impulses, personaImpulse(models.CategoryTransport, ""))
		}
		if got := ClassifyPersona(impulses); got != PersonaUnknown {
			t.Errorf("ClassifyPersona = %s, want unknown for zero scores", got)
		}
	})

	t.Run("source app is case insensitive", func(t *testing.T) {
		var impulses []models.Impulse
		for i := 0; i < 6; i++ {
			impulses = append(impulses, personaImpulse(models.CategoryFood, "DoorDash"))
		}
		if got := ClassifyPersona(impulses); got != PersonaFoodie {
			t.Errorf("ClassifyPersona = %s, want foodie", got)
		}
	})
}
