package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteScoreRepo implements ScoreRepo using a SQLite database.
type SQLiteScoreRepo struct {
	db db.DBTX
}

// NewSQLiteScoreRepo creates a new SQLiteScoreRepo.
func NewSQLiteScoreRepo(conn db.DBTX) *SQLiteScoreRepo {
	return &SQLiteScoreRepo{db: conn}
}

func (r *SQLiteScoreRepo) Get(ctx context.Context, userID, skillID string) (*domain.UserSkillScore, error) {
	var s domain.UserSkillScore
	var updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, skill_id, proficiency, updated_at FROM user_skill_scores
		 WHERE user_id = ? AND skill_id = ?`, userID, skillID,
	).Scan(&s.UserID, &s.SkillID, &s.Proficiency, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("score %s/%s: %w", userID, skillID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning score: %w", err)
	}
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func (r *SQLiteScoreRepo) ListByUser(ctx context.Context, userID string) ([]*domain.UserSkillScore, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, skill_id, proficiency, updated_at FROM user_skill_scores
		 WHERE user_id = ? ORDER BY skill_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}
	defer rows.Close()

	var scores []*domain.UserSkillScore
	for rows.Next() {
		var s domain.UserSkillScore
		var updatedAt string
		if err := rows.Scan(&s.UserID, &s.SkillID, &s.Proficiency, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		s.UpdatedAt = parseTime(updatedAt)
		scores = append(scores, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scores: %w", err)
	}
	return scores, nil
}

// Upsert writes the score keyed by (user, skill). Concurrent writers resolve
// last-writer-wins.
func (r *SQLiteScoreRepo) Upsert(ctx context.Context, s *domain.UserSkillScore) error {
	s.UpdatedAt = timeOrNow(s.UpdatedAt)
	query := `INSERT INTO user_skill_scores (user_id, skill_id, proficiency, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, skill_id) DO UPDATE
		SET proficiency = excluded.proficiency, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.SkillID, s.Proficiency, formatTime(s.UpdatedAt)); err != nil {
		return fmt.Errorf("upserting score %s/%s: %w", s.UserID, s.SkillID, err)
	}
	return nil
}
