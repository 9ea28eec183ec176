package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteRoadmapRepo implements RoadmapRepo using a SQLite database.
type SQLiteRoadmapRepo struct {
	db db.DBTX
}

// NewSQLiteRoadmapRepo creates a new SQLiteRoadmapRepo.
func NewSQLiteRoadmapRepo(conn db.DBTX) *SQLiteRoadmapRepo {
	return &SQLiteRoadmapRepo{db: conn}
}

const roadmapColumns = `user_id, role_id, skill_id, category, priority, status, progress, seq, created_at, updated_at`

// nextSeqExpr numbers a new entry after the existing ones for (user, role).
const nextSeqExpr = `(SELECT COALESCE(MAX(seq), 0) + 1 FROM roadmap_entries WHERE user_id = ? AND role_id = ?)`

func (r *SQLiteRoadmapRepo) Get(ctx context.Context, userID, roleID, skillID string) (*domain.RoadmapEntry, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmap_entries
		WHERE user_id = ? AND role_id = ? AND skill_id = ?`
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, userID, roleID, skillID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("roadmap entry %s/%s: %w", roleID, skillID, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// ListByUserRole returns entries in insertion order.
func (r *SQLiteRoadmapRepo) ListByUserRole(ctx context.Context, userID, roleID string) ([]*domain.RoadmapEntry, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmap_entries
		WHERE user_id = ? AND role_id = ? ORDER BY seq, skill_id`
	rows, err := r.db.QueryContext(ctx, query, userID, roleID)
	if err != nil {
		return nil, fmt.Errorf("listing roadmap entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.RoadmapEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmap entries: %w", err)
	}
	return entries, nil
}

// Upsert creates the entry as todo with zero progress, or refreshes only
// category and priority of an existing one. Status and progress survive
// regeneration.
func (r *SQLiteRoadmapRepo) Upsert(ctx context.Context, e *domain.RoadmapEntry) error {
	now := timeOrNow(e.UpdatedAt)
	query := `INSERT INTO roadmap_entries (` + roadmapColumns + `)
		VALUES (?, ?, ?, ?, ?, 'todo', 0, ` + nextSeqExpr + `, ?, ?)
		ON CONFLICT(user_id, role_id, skill_id) DO UPDATE
		SET category = excluded.category, priority = excluded.priority, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.UserID, e.RoleID, e.SkillID, string(e.Category), e.Priority,
		e.UserID, e.RoleID,
		formatTime(timeOrNow(e.CreatedAt)), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("upserting roadmap entry %s: %w", e.SkillID, err)
	}
	return nil
}

// InsertIfAbsent adds the entry unless one already exists for its key.
// It reports whether a row was inserted.
func (r *SQLiteRoadmapRepo) InsertIfAbsent(ctx context.Context, e *domain.RoadmapEntry) (bool, error) {
	query := `INSERT INTO roadmap_entries (` + roadmapColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ` + nextSeqExpr + `, ?, ?)
		ON CONFLICT(user_id, role_id, skill_id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query,
		e.UserID, e.RoleID, e.SkillID, string(e.Category), e.Priority, string(e.Status), e.Progress,
		e.UserID, e.RoleID,
		formatTime(timeOrNow(e.CreatedAt)), formatTime(timeOrNow(e.UpdatedAt)),
	)
	if err != nil {
		return false, fmt.Errorf("inserting roadmap entry %s: %w", e.SkillID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking inserted roadmap entry: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRoadmapRepo) UpdateClassification(ctx context.Context, e *domain.RoadmapEntry) error {
	query := `UPDATE roadmap_entries SET category = ?, priority = ?, updated_at = ?
		WHERE user_id = ? AND role_id = ? AND skill_id = ?`
	return r.exec(ctx, "updating roadmap classification", query,
		string(e.Category), e.Priority, formatTime(timeOrNow(e.UpdatedAt)),
		e.UserID, e.RoleID, e.SkillID)
}

func (r *SQLiteRoadmapRepo) UpdateProgress(ctx context.Context, e *domain.RoadmapEntry) error {
	query := `UPDATE roadmap_entries SET status = ?, progress = ?, updated_at = ?
		WHERE user_id = ? AND role_id = ? AND skill_id = ?`
	return r.exec(ctx, "updating roadmap progress", query,
		string(e.Status), e.Progress, formatTime(timeOrNow(e.UpdatedAt)),
		e.UserID, e.RoleID, e.SkillID)
}

// exec runs a keyed update and maps zero affected rows to ErrNotFound.
func (r *SQLiteRoadmapRepo) exec(ctx context.Context, what, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func scanEntry(row rowScanner) (*domain.RoadmapEntry, error) {
	var e domain.RoadmapEntry
	var category, status, createdAt, updatedAt string
	err := row.Scan(&e.UserID, &e.RoleID, &e.SkillID, &category, &e.Priority, &status,
		&e.Progress, &e.Seq, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning roadmap entry: %w", err)
	}
	e.Category = domain.Category(category)
	e.Status = domain.RoadmapStatus(status)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}
