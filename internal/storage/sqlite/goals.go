package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kmcrane/urge/internal/models"
)

func (s *Store) AddGoal(goal models.SavingsGoal) error {
	return s.UpdateGoal(goal)
}

func (s *Store) GetAllGoals() ([]models.SavingsGoal, error) {
	rows, err := s.db.Query(`
		SELECT id, name, target, description, created_at, achieved_at
		FROM goals ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		var createdAt string
		var achievedAt sql.NullString

		if err := rows.Scan(&g.ID, &g.Name, &g.Target, &g.Description, &createdAt, &achievedAt); err != nil {
			return nil, err
		}

		if g.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for goal %s: %w", g.ID, err)
		}
		if achievedAt.Valid {
			t, err := time.Parse(time.RFC3339, achievedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing achieved_at for goal %s: %w", g.ID, err)
			}
			g.AchievedAt = &t
		}

		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) UpdateGoal(goal models.SavingsGoal) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO goals (id, name, target, description, created_at, achieved_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Name, goal.Target, goal.Description,
		goal.CreatedAt.UTC().Format(time.RFC3339), nullTime(goal.AchievedAt),
	)
	return err
}

func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("goal not found: %s", id)
	}
	return nil
}
