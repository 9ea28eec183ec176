package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

type roadmapService struct {
	catalog  repository.CatalogRepo
	roles    repository.UserRoleRepo
	scores   repository.ScoreRepo
	roadmap  repository.RoadmapRepo
	uow      db.UnitOfWork
	logger   *slog.Logger
	observer UseCaseObserver
}

func NewRoadmapService(
	catalog repository.CatalogRepo,
	roles repository.UserRoleRepo,
	scores repository.ScoreRepo,
	roadmap repository.RoadmapRepo,
	uow db.UnitOfWork,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) RoadmapService {
	return &roadmapService{
		catalog:  catalog,
		roles:    roles,
		scores:   scores,
		roadmap:  roadmap,
		uow:      uow,
		logger:   loggerOrDiscard(logger),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *roadmapService) SetRole(ctx context.Context, userID, roleID string) error {
	if _, err := s.catalog.GetRole(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("role %q: %w", roleID, err)
		}
		return persistenceErr("loading role", err)
	}
	err := s.roles.Set(ctx, &domain.UserRole{UserID: userID, RoleID: roleID, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return persistenceErr("setting target role", err)
	}
	return nil
}

// Generate recomputes category and priority for every skill of the user's
// target role. Existing entries keep their status and progress. Running it
// again with unchanged inputs is a no-op, which makes it the recovery path
// after a failed ingest.
func (s *roadmapService) Generate(ctx context.Context, userID string) (view *app.RoadmapView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID}
	defer observe(ctx, s.observer, "generate-roadmap", startedAt, fields, &err)

	roleID, err := targetRole(ctx, s.roles, userID)
	if err != nil {
		return nil, err
	}
	fields["role_id"] = roleID

	snap, err := loadSnapshot(ctx, s.catalog)
	if err != nil {
		return nil, err
	}
	weights := snap.RoleWeights(roleID)
	g, cycle := buildGraph(ctx, snap, s.logger)

	scores, err := s.scores.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistenceErr("loading scores", err)
	}
	bySkill := make(map[string]int, len(scores))
	for _, sc := range scores {
		bySkill[sc.SkillID] = sc.Proficiency
	}

	assessments := skillgap.Assess(weights, bySkill, g)
	fields["skill_count"] = len(assessments)

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRoadmap := repository.NewSQLiteRoadmapRepo(tx)
		for _, a := range assessments {
			e := &domain.RoadmapEntry{
				UserID:    userID,
				RoleID:    roleID,
				SkillID:   a.SkillID,
				Category:  a.Category,
				Priority:  a.Priority,
				Status:    domain.RoadmapTodo,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := txRoadmap.Upsert(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, persistenceErr("writing roadmap", err)
	}

	view, err = s.view(ctx, userID, roleID)
	if err != nil {
		return nil, err
	}
	if len(cycle) > 0 {
		view.Warnings = append(view.Warnings, cycleWarning(cycle))
	}
	return view, nil
}

func (s *roadmapService) Snapshot(ctx context.Context, userID string) (*app.RoadmapView, error) {
	roleID, err := targetRole(ctx, s.roles, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, userID, roleID)
}

// SetProgress records resource completion for one roadmap entry. Status is
// derived from the clamped percentage.
func (s *roadmapService) SetProgress(ctx context.Context, userID, skillID string, pct int) (entry *domain.RoadmapEntry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "skill_id": skillID, "progress": pct}
	defer observe(ctx, s.observer, "set-progress", startedAt, fields, &err)

	roleID, err := targetRole(ctx, s.roles, userID)
	if err != nil {
		return nil, err
	}
	entry, err = s.roadmap.Get(ctx, userID, roleID, skillID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("roadmap entry %q: %w", skillID, err)
	}
	if err != nil {
		return nil, persistenceErr("loading roadmap entry", err)
	}

	entry.SetProgress(pct, time.Now().UTC())
	if err := s.roadmap.UpdateProgress(ctx, entry); err != nil {
		return nil, persistenceErr("updating progress", err)
	}
	return entry, nil
}

// view reads entries in insertion order, then stable-sorts by priority so
// equal priorities keep that order.
func (s *roadmapService) view(ctx context.Context, userID, roleID string) (*app.RoadmapView, error) {
	entries, err := s.roadmap.ListByUserRole(ctx, userID, roleID)
	if err != nil {
		return nil, persistenceErr("loading roadmap", err)
	}
	skillgap.SortByPriority(entries)
	return &app.RoadmapView{
		UserID:          userID,
		RoleID:          roleID,
		Entries:         entries,
		AverageProgress: domain.AverageProgress(entries),
	}, nil
}
