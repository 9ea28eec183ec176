package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/importer"
	"github.com/alexanderramin/skillpath/internal/repository"
)

type catalogService struct {
	catalog  repository.CatalogRepo
	uow      db.UnitOfWork
	logger   *slog.Logger
	observer UseCaseObserver
}

func NewCatalogService(
	catalog repository.CatalogRepo,
	uow db.UnitOfWork,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		catalog:  catalog,
		uow:      uow,
		logger:   loggerOrDiscard(logger),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) ImportCatalog(ctx context.Context, filePath string) (*app.CatalogImportResult, error) {
	schema, err := importer.LoadCatalogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportCatalogFromSchema(ctx, schema)
}

// ImportCatalogFromSchema validates and writes a catalog in one transaction.
// Existing skills and roles are updated in place; nothing is removed.
func (s *catalogService) ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogSchema) (result *app.CatalogImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-catalog", startedAt, fields, &err)

	if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors("catalog", errs)
	}

	c := importer.ConvertCatalog(schema)
	fields["skill_count"] = len(c.Skills)
	fields["role_count"] = len(c.Roles)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCatalog := repository.NewSQLiteCatalogRepo(tx)

		for i := range c.Skills {
			if err := txCatalog.UpsertSkill(ctx, &c.Skills[i]); err != nil {
				return err
			}
		}
		for i := range c.Roles {
			if err := txCatalog.UpsertRole(ctx, &c.Roles[i]); err != nil {
				return err
			}
		}
		for i := range c.Weights {
			if err := txCatalog.SetRoleSkill(ctx, &c.Weights[i]); err != nil {
				return err
			}
		}
		for i := range c.Dependencies {
			if err := txCatalog.AddDependency(ctx, &c.Dependencies[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, persistenceErr("writing catalog", err)
	}

	// Cycles are checked against the whole stored graph, not just this file.
	snap, err := loadSnapshot(ctx, s.catalog)
	if err != nil {
		return nil, err
	}
	_, cycle := buildGraph(ctx, snap, s.logger)

	return &app.CatalogImportResult{
		SkillCount:      len(c.Skills),
		RoleCount:       len(c.Roles),
		WeightCount:     len(c.Weights),
		DependencyCount: len(c.Dependencies),
		CycleMembers:    cycle,
	}, nil
}

func (s *catalogService) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	return loadSnapshot(ctx, s.catalog)
}

func (s *catalogService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.catalog.ListRoles(ctx)
	if err != nil {
		return nil, persistenceErr("listing roles", err)
	}
	return roles, nil
}

// ResolveSkill matches an exact skill ID first, then an ID or name ignoring case.
func (s *catalogService) ResolveSkill(ctx context.Context, ref string) (string, error) {
	c, err := loadSnapshot(ctx, s.catalog)
	if err != nil {
		return "", err
	}
	ref = strings.TrimSpace(ref)
	if c.HasSkill(ref) {
		return ref, nil
	}
	for _, sk := range c.Skills {
		if strings.EqualFold(sk.ID, ref) || strings.EqualFold(sk.Name, ref) {
			return sk.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", app.ErrUnknownSkill, ref)
}
