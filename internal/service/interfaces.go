package service

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
)

type CatalogService interface {
	app.ImportCatalogUseCase
	app.SkillResolver
	Snapshot(ctx context.Context) (*domain.Catalog, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

type RoadmapService interface {
	app.GenerateRoadmapUseCase
	SetRole(ctx context.Context, userID, roleID string) error
	Snapshot(ctx context.Context, userID string) (*app.RoadmapView, error)
	SetProgress(ctx context.Context, userID, skillID string, pct int) (*domain.RoadmapEntry, error)
}

type AttemptService interface {
	app.SubmitAttemptUseCase
	GetByID(ctx context.Context, id string) (*domain.Attempt, error)
	ListRecent(ctx context.Context, userID string, kind domain.ContextKind, limit int) ([]*domain.Attempt, error)
}

type DifficultyService interface {
	app.NextDifficultyUseCase
}
