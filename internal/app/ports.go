package app

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/importer"
)

type GenerateRoadmapUseCase interface {
	Generate(ctx context.Context, userID string) (*RoadmapView, error)
}

type SubmitAttemptUseCase interface {
	Submit(ctx context.Context, a *domain.Attempt) (*IngestResult, error)
}

type NextDifficultyUseCase interface {
	Next(ctx context.Context, userID string, kind domain.ContextKind) (*DifficultyDecision, error)
}

type ImportCatalogUseCase interface {
	ImportCatalog(ctx context.Context, filePath string) (*CatalogImportResult, error)
	ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogSchema) (*CatalogImportResult, error)
}

// SkillResolver maps a user-facing skill reference (ID or name) to a
// catalog skill ID. It returns ErrUnknownSkill when nothing matches.
type SkillResolver interface {
	ResolveSkill(ctx context.Context, ref string) (string, error)
}
