package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteUserRoleRepo implements UserRoleRepo using a SQLite database.
type SQLiteUserRoleRepo struct {
	db db.DBTX
}

// NewSQLiteUserRoleRepo creates a new SQLiteUserRoleRepo.
func NewSQLiteUserRoleRepo(conn db.DBTX) *SQLiteUserRoleRepo {
	return &SQLiteUserRoleRepo{db: conn}
}

func (r *SQLiteUserRoleRepo) Get(ctx context.Context, userID string) (*domain.UserRole, error) {
	var ur domain.UserRole
	var updatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, role_id, updated_at FROM user_roles WHERE user_id = ?`, userID,
	).Scan(&ur.UserID, &ur.RoleID, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user role %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user role: %w", err)
	}
	ur.UpdatedAt = parseTime(updatedAt)
	return &ur, nil
}

func (r *SQLiteUserRoleRepo) Set(ctx context.Context, ur *domain.UserRole) error {
	ur.UpdatedAt = timeOrNow(ur.UpdatedAt)
	query := `INSERT INTO user_roles (user_id, role_id, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET role_id = excluded.role_id, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, ur.UserID, ur.RoleID, formatTime(ur.UpdatedAt)); err != nil {
		return fmt.Errorf("setting user role: %w", err)
	}
	return nil
}
