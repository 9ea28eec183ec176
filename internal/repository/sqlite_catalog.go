package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

func (r *SQLiteCatalogRepo) UpsertSkill(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (id, name, category) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, category = excluded.category`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Category); err != nil {
		return fmt.Errorf("upserting skill %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) UpsertRole(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`
	if _, err := r.db.ExecContext(ctx, query, role.ID, role.Name); err != nil {
		return fmt.Errorf("upserting role %s: %w", role.ID, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) SetRoleSkill(ctx context.Context, w *domain.RoleSkillWeight) error {
	query := `INSERT INTO role_skills (role_id, skill_id, weight, order_index) VALUES (?, ?, ?, ?)
		ON CONFLICT(role_id, skill_id) DO UPDATE
		SET weight = excluded.weight, order_index = excluded.order_index`
	if _, err := r.db.ExecContext(ctx, query, w.RoleID, w.SkillID, w.Weight, w.Order); err != nil {
		return fmt.Errorf("setting role skill %s/%s: %w", w.RoleID, w.SkillID, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) AddDependency(ctx context.Context, d *domain.SkillDependency) error {
	query := `INSERT OR IGNORE INTO skill_dependencies (prerequisite_skill_id, dependent_skill_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, d.PrerequisiteSkillID, d.DependentSkillID); err != nil {
		return fmt.Errorf("inserting dependency %s -> %s: %w", d.PrerequisiteSkillID, d.DependentSkillID, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE id = ?`, id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("role %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning role: %w", err)
	}
	return &role, nil
}

func (r *SQLiteCatalogRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, category FROM skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skills: %w", err)
	}
	return skills, nil
}

func (r *SQLiteCatalogRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roles: %w", err)
	}
	return roles, nil
}

func (r *SQLiteCatalogRepo) ListDependencies(ctx context.Context) ([]domain.SkillDependency, error) {
	query := `SELECT prerequisite_skill_id, dependent_skill_id FROM skill_dependencies
		ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	var deps []domain.SkillDependency
	for rows.Next() {
		var d domain.SkillDependency
		if err := rows.Scan(&d.PrerequisiteSkillID, &d.DependentSkillID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

// Snapshot loads the full catalog. Each list is read fully before the next
// query starts.
func (r *SQLiteCatalogRepo) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	skills, err := r.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := r.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT role_id, skill_id, weight, order_index FROM role_skills ORDER BY role_id, order_index, skill_id`)
	if err != nil {
		return nil, fmt.Errorf("listing all role weights: %w", err)
	}
	weights, err := scanWeights(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	deps, err := r.ListDependencies(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Catalog{Skills: skills, Roles: roles, Weights: weights, Dependencies: deps}, nil
}

func scanWeights(rows *sql.Rows) ([]domain.RoleSkillWeight, error) {
	var weights []domain.RoleSkillWeight
	for rows.Next() {
		var w domain.RoleSkillWeight
		if err := rows.Scan(&w.RoleID, &w.SkillID, &w.Weight, &w.Order); err != nil {
			return nil, fmt.Errorf("scanning role weight: %w", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating role weights: %w", err)
	}
	return weights, nil
}
