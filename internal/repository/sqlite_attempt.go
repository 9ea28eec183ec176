package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

// SQLiteAttemptRepo implements AttemptRepo using a SQLite database.
type SQLiteAttemptRepo struct {
	db db.DBTX
}

// NewSQLiteAttemptRepo creates a new SQLiteAttemptRepo.
func NewSQLiteAttemptRepo(conn db.DBTX) *SQLiteAttemptRepo {
	return &SQLiteAttemptRepo{db: conn}
}

// Create inserts the attempt and its per-skill breakdown. Run it inside a
// UnitOfWork so the breakdown cannot be written without its attempt.
func (r *SQLiteAttemptRepo) Create(ctx context.Context, a *domain.Attempt) error {
	a.CreatedAt = timeOrNow(a.CreatedAt)
	query := `INSERT INTO attempts (id, user_id, kind, difficulty_level, correct_count, total_count, xp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		string(a.Kind),
		a.DifficultyLevel,
		a.CorrectCount,
		a.TotalCount,
		a.XP,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting attempt: %w", err)
	}

	resultQuery := `INSERT INTO attempt_skill_results (attempt_id, skill_id, points_earned, max_points, attempt_score)
		VALUES (?, ?, ?, ?, ?)`
	for _, res := range a.Results {
		score := skillgap.AttemptScore(res.PointsEarned, res.MaxPoints)
		if _, err := r.db.ExecContext(ctx, resultQuery, a.ID, res.SkillID, res.PointsEarned, res.MaxPoints, score); err != nil {
			return fmt.Errorf("inserting attempt result for %s: %w", res.SkillID, err)
		}
	}
	return nil
}

func (r *SQLiteAttemptRepo) GetByID(ctx context.Context, id string) (*domain.Attempt, error) {
	query := `SELECT id, user_id, kind, difficulty_level, correct_count, total_count, xp, created_at
		FROM attempts WHERE id = ?`
	a, err := scanAttempt(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id, points_earned, max_points FROM attempt_skill_results
		 WHERE attempt_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("listing attempt results: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var res domain.SkillResult
		if err := rows.Scan(&res.SkillID, &res.PointsEarned, &res.MaxPoints); err != nil {
			return nil, fmt.Errorf("scanning attempt result: %w", err)
		}
		a.Results = append(a.Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attempt results: %w", err)
	}
	return a, nil
}

// ListRecent returns up to limit attempts of one kind, most recent first.
// Per-skill results are not loaded.
func (r *SQLiteAttemptRepo) ListRecent(ctx context.Context, userID string, kind domain.ContextKind, limit int) ([]*domain.Attempt, error) {
	query := `SELECT id, user_id, kind, difficulty_level, correct_count, total_count, xp, created_at
		FROM attempts WHERE user_id = ? AND kind = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*domain.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attempts: %w", err)
	}
	return attempts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*domain.Attempt, error) {
	var a domain.Attempt
	var kind, createdAt string
	err := row.Scan(&a.ID, &a.UserID, &kind, &a.DifficultyLevel, &a.CorrectCount, &a.TotalCount, &a.XP, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning attempt: %w", err)
	}
	a.Kind = domain.ContextKind(kind)
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}
