package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/models"
)

const impulseColumns = `id, title, category, price, notes, emotion, urgency, urge_strength,
	location, photo_ref, source_app, status, created_at, review_at, decision_at,
	regret_check_at, skipped_feeling, final_feeling, regret_rating, regret_notes`

func scanImpulse(scan func(...any) error) (models.Impulse, error) {
	var imp models.Impulse
	var category, emotion, urgency, status string
	var createdAt, reviewAt string
	var decisionAt, regretCheckAt, skippedFeeling, finalFeeling sql.NullString

	err := scan(
		&imp.ID, &imp.Title, &category, &imp.Price, &imp.Notes, &emotion, &urgency, &imp.UrgeStrength,
		&imp.Location, &imp.PhotoRef, &imp.SourceApp, &status, &createdAt, &reviewAt, &decisionAt,
		&regretCheckAt, &skippedFeeling, &finalFeeling, &imp.RegretRating, &imp.RegretNotes,
	)
	if err != nil {
		return models.Impulse{}, err
	}

	imp.Category = models.Category(category)
	imp.Emotion = models.Emotion(emotion)
	imp.Urgency = models.Urgency(urgency)
	imp.Status = models.Status(status)

	if imp.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Impulse{}, fmt.Errorf("parsing created_at for %s: %w", imp.ID, err)
	}
	if imp.ReviewAt, err = time.Parse(time.RFC3339, reviewAt); err != nil {
		return models.Impulse{}, fmt.Errorf("parsing review_at for %s: %w", imp.ID, err)
	}
	if decisionAt.Valid {
		t, err := time.Parse(time.RFC3339, decisionAt.String)
		if err != nil {
			return models.Impulse{}, fmt.Errorf("parsing decision_at for %s: %w", imp.ID, err)
		}
		imp.DecisionAt = &t
	}
	if regretCheckAt.Valid {
		t, err := time.Parse(time.RFC3339, regretCheckAt.String)
		if err != nil {
			return models.Impulse{}, fmt.Errorf("parsing regret_check_at for %s: %w", imp.ID, err)
		}
		imp.RegretCheckAt = &t
	}
	if skippedFeeling.Valid {
		imp.SkippedFeeling = models.SkippedFeeling(skippedFeeling.String)
	}
	if finalFeeling.Valid {
		imp.FinalFeeling = models.FinalFeeling(finalFeeling.String)
	}

	return imp, nil
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (s *Store) AddImpulse(imp models.Impulse) error {
	return s.UpdateImpulse(imp)
}

func (s *Store) GetImpulse(id string) (models.Impulse, error) {
	row := s.db.QueryRow(`SELECT `+impulseColumns+` FROM impulses WHERE id = ?`, id)
	imp, err := scanImpulse(row.Scan)
	if err == sql.ErrNoRows {
		return models.Impulse{}, fmt.Errorf("impulse not found: %s", id)
	}
	return imp, err
}

func (s *Store) GetAllImpulses() ([]models.Impulse, error) {
	rows, err := s.db.Query(`SELECT ` + impulseColumns + ` FROM impulses ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var impulses []models.Impulse
	for rows.Next() {
		imp, err := scanImpulse(rows.Scan)
		if err != nil {
			return nil, err
		}
		impulses = append(impulses, imp)
	}
	return impulses, rows.Err()
}

func (s *Store) UpdateImpulse(imp models.Impulse) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO impulses (
			id, title, category, price, notes, emotion, urgency, urge_strength,
			location, photo_ref, source_app, status, created_at, review_at, decision_at,
			regret_check_at, skipped_feeling, final_feeling, regret_rating, regret_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		imp.ID, imp.Title, imp.Category, imp.Price, imp.Notes, imp.Emotion, imp.Urgency, imp.UrgeStrength,
		imp.Location, imp.PhotoRef, imp.SourceApp, imp.Status,
		imp.CreatedAt.UTC().Format(time.RFC3339), imp.ReviewAt.UTC().Format(time.RFC3339),
		nullTime(imp.DecisionAt), nullTime(imp.RegretCheckAt),
		nullString(string(imp.SkippedFeeling)), nullString(string(imp.FinalFeeling)),
		imp.RegretRating, imp.RegretNotes,
	)
	return err
}

// SaveAllImpulses persists the whole collection in one transaction. Used for
// bulk promotion where several records change in the same tick.
func (s *Store) SaveAllImpulses(impulses []models.Impulse) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO impulses (
			id, title, category, price, notes, emotion, urgency, urge_strength,
			location, photo_ref, source_app, status, created_at, review_at, decision_at,
			regret_check_at, skipped_feeling, final_feeling, regret_rating, regret_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, imp := range impulses {
		_, err := stmt.Exec(
			imp.ID, imp.Title, imp.Category, imp.Price, imp.Notes, imp.Emotion, imp.Urgency, imp.UrgeStrength,
			imp.Location, imp.PhotoRef, imp.SourceApp, imp.Status,
			imp.CreatedAt.UTC().Format(time.RFC3339), imp.ReviewAt.UTC().Format(time.RFC3339),
			nullTime(imp.DecisionAt), nullTime(imp.RegretCheckAt),
			nullString(string(imp.SkippedFeeling)), nullString(string(imp.FinalFeeling)),
			imp.RegretRating, imp.RegretNotes,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) DeleteImpulse(id string) error {
	res, err := s.db.Exec("DELETE FROM impulses WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("impulse not found: %s", id)
	}
	return nil
}

func (s *Store) ClearImpulses() error {
	_, err := s.db.Exec("DELETE FROM impulses")
	return err
}
