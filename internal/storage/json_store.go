package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kmcrane/urge/internal/models"
)

// Store is the on-disk document shape: one JSON blob holding everything.
// Every save rewrites the whole file, which matches the app's single-writer,
// whole-collection persistence model.
type Store struct {
	Version  int                  `json:"version"`
	Settings models.Settings      `json:"settings"`
	Impulses []models.Impulse     `json:"impulses"`
	Goals    []models.SavingsGoal `json:"goals"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: models.DefaultSettings(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'urge init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddImpulse(imp models.Impulse) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Impulses = append(s.store.Impulses, imp)
	return s.save()
}

func (s *JSONStore) GetImpulse(id string) (models.Impulse, error) {
	if s.store == nil {
		return models.Impulse{}, fmt.Errorf("storage not loaded")
	}
	for _, imp := range s.store.Impulses {
		if imp.ID == id {
			return imp, nil
		}
	}
	return models.Impulse{}, fmt.Errorf("impulse not found: %s", id)
}

func (s *JSONStore) GetAllImpulses() ([]models.Impulse, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	out := make([]models.Impulse, len(s.store.Impulses))
	copy(out, s.store.Impulses)
	return out, nil
}

func (s *JSONStore) UpdateImpulse(imp models.Impulse) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.store.Impulses {
		if s.store.Impulses[i].ID == imp.ID {
			s.store.Impulses[i] = imp
			return s.save()
		}
	}
	return fmt.Errorf("impulse not found: %s", imp.ID)
}

func (s *JSONStore) SaveAllImpulses(impulses []models.Impulse) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Impulses = make([]models.Impulse, len(impulses))
	copy(s.store.Impulses, impulses)
	return s.save()
}

func (s *JSONStore) DeleteImpulse(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.store.Impulses {
		if s.store.Impulses[i].ID == id {
			s.store.Impulses = append(s.store.Impulses[:i], s.store.Impulses[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("impulse not found: %s", id)
}

func (s *JSONStore) ClearImpulses() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Impulses = nil
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddGoal(goal models.SavingsGoal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Goals = append(s.store.Goals, goal)
	return s.save()
}

func (s *JSONStore) GetAllGoals() ([]models.SavingsGoal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	out := make([]models.SavingsGoal, len(s.store.Goals))
	copy(out, s.store.Goals)
	return out, nil
}

func (s *JSONStore) UpdateGoal(goal models.SavingsGoal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.store.Goals {
		if s.store.Goals[i].ID == goal.ID {
			s.store.Goals[i] = goal
			return s.save()
		}
	}
	return fmt.Errorf("goal not found: %s", goal.ID)
}

func (s *JSONStore) DeleteGoal(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.store.Goals {
		if s.store.Goals[i].ID == id {
			s.store.Goals = append(s.store.Goals[:i], s.store.Goals[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("goal not found: %s", id)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
