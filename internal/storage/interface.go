package storage

import "github.com/kmcrane/urge/internal/models"

// Provider is the persistence boundary for the impulse collection, settings,
// and savings goals. The app assumes a single logical writer; a mutation is
// always a whole-record write and a second concurrent writer simply wins
// last (no conflict detection).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Impulses
	AddImpulse(models.Impulse) error
	GetImpulse(id string) (models.Impulse, error)
	GetAllImpulses() ([]models.Impulse, error)
	UpdateImpulse(models.Impulse) error
	// SaveAllImpulses overwrites the full collection in one operation,
	// used by bulk promotion from the watch loop.
	SaveAllImpulses([]models.Impulse) error
	DeleteImpulse(id string) error
	ClearImpulses() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Savings goals
	AddGoal(models.SavingsGoal) error
	GetAllGoals() ([]models.SavingsGoal, error)
	UpdateGoal(models.SavingsGoal) error
	DeleteGoal(id string) error

	// Utils
	GetConfigPath() string
}
