package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("not found")

type CatalogRepo interface {
	UpsertSkill(ctx context.Context, s *domain.Skill) error
	UpsertRole(ctx context.Context, r *domain.Role) error
	SetRoleSkill(ctx context.Context, w *domain.RoleSkillWeight) error
	AddDependency(ctx context.Context, d *domain.SkillDependency) error
	GetRole(ctx context.Context, id string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	// Snapshot loads skills, roles, weights and edges in one read-only copy.
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

type UserRoleRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserRole, error)
	Set(ctx context.Context, ur *domain.UserRole) error
}

type ScoreRepo interface {
	Get(ctx context.Context, userID, skillID string) (*domain.UserSkillScore, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.UserSkillScore, error)
	Upsert(ctx context.Context, s *domain.UserSkillScore) error
}

type AttemptRepo interface {
	Create(ctx context.Context, a *domain.Attempt) error
	GetByID(ctx context.Context, id string) (*domain.Attempt, error)
	ListRecent(ctx context.Context, userID string, kind domain.ContextKind, limit int) ([]*domain.Attempt, error)
}

type RoadmapRepo interface {
	Get(ctx context.Context, userID, roleID, skillID string) (*domain.RoadmapEntry, error)
	ListByUserRole(ctx context.Context, userID, roleID string) ([]*domain.RoadmapEntry, error)
	Upsert(ctx context.Context, e *domain.RoadmapEntry) error
	InsertIfAbsent(ctx context.Context, e *domain.RoadmapEntry) (bool, error)
	UpdateClassification(ctx context.Context, e *domain.RoadmapEntry) error
	UpdateProgress(ctx context.Context, e *domain.RoadmapEntry) error
}
