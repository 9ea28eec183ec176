package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/skillgap"
	"github.com/google/uuid"
)

type attemptService struct {
	catalog  repository.CatalogRepo
	roles    repository.UserRoleRepo
	attempts repository.AttemptRepo
	roadmap  repository.RoadmapRepo
	uow      db.UnitOfWork
	logger   *slog.Logger
	observer UseCaseObserver
}

func NewAttemptService(
	catalog repository.CatalogRepo,
	roles repository.UserRoleRepo,
	attempts repository.AttemptRepo,
	roadmap repository.RoadmapRepo,
	uow db.UnitOfWork,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) AttemptService {
	return &attemptService{
		catalog:  catalog,
		roles:    roles,
		attempts: attempts,
		roadmap:  roadmap,
		uow:      uow,
		logger:   loggerOrDiscard(logger),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Submit ingests a graded attempt.
//
// The attempt row and every blended score are written in one transaction.
// The roadmap steps that follow (refresh, assessment progress, mastery
// unlock) run in sequence without a transaction. If one of them fails the
// partial result is returned together with an app.ErrPersistence error;
// calling RoadmapService.Generate repairs the roadmap.
func (s *attemptService) Submit(ctx context.Context, a *domain.Attempt) (result *app.IngestResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": a.UserID, "kind": string(a.Kind)}
	defer observe(ctx, s.observer, "submit-attempt", startedAt, fields, &err)

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", app.ErrInvalidAttempt, err)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	snap, err := loadSnapshot(ctx, s.catalog)
	if err != nil {
		return nil, err
	}
	skipped := s.dropUnknownSkills(ctx, a, snap.SkillSet())
	a.XP = rewardFor(a)

	result = &app.IngestResult{AttemptID: a.ID, Kind: a.Kind, XP: a.XP, Skipped: skipped}
	fields["attempt_id"] = a.ID
	fields["skill_count"] = len(a.Results)
	fields["skipped_count"] = len(skipped)

	var changes []app.SkillScoreChange
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAttempts := repository.NewSQLiteAttemptRepo(tx)
		txScores := repository.NewSQLiteScoreRepo(tx)

		if err := txAttempts.Create(ctx, a); err != nil {
			return err
		}
		changes = changes[:0]
		for _, r := range a.Results {
			change, err := blendScore(ctx, txScores, a, r)
			if err != nil {
				return err
			}
			changes = append(changes, change)
		}
		return nil
	})
	if err != nil {
		return nil, persistenceErr("recording attempt", err)
	}
	result.Scores = changes

	roleID, err := targetRole(ctx, s.roles, a.UserID)
	if errors.Is(err, app.ErrNoRoleSelected) {
		s.logger.DebugContext(ctx, "no target role, roadmap left untouched", "user_id", a.UserID)
		return result, nil
	}
	if err != nil {
		return result, err
	}
	fields["role_id"] = roleID

	if err := s.updateRoadmap(ctx, a, snap, roleID, result); err != nil {
		return result, err
	}
	fields["unlocked_count"] = len(result.Unlocked)
	return result, nil
}

func (s *attemptService) GetByID(ctx context.Context, id string) (*domain.Attempt, error) {
	return s.attempts.GetByID(ctx, id)
}

func (s *attemptService) ListRecent(ctx context.Context, userID string, kind domain.ContextKind, limit int) ([]*domain.Attempt, error) {
	return s.attempts.ListRecent(ctx, userID, kind, limit)
}

// dropUnknownSkills removes results for skills missing from the catalog and
// returns their IDs. The rest of the attempt is still ingested.
func (s *attemptService) dropUnknownSkills(ctx context.Context, a *domain.Attempt, known map[string]bool) []string {
	var skipped []string
	kept := a.Results[:0:0]
	for _, r := range a.Results {
		if !known[r.SkillID] {
			s.logger.WarnContext(ctx, "skipping skill result",
				"user_id", a.UserID,
				"attempt_id", a.ID,
				"skill_id", r.SkillID,
				"error", app.ErrUnknownSkill.Error(),
			)
			skipped = append(skipped, r.SkillID)
			continue
		}
		kept = append(kept, r)
	}
	a.Results = kept
	return skipped
}

func blendScore(ctx context.Context, scores repository.ScoreRepo, a *domain.Attempt, r domain.SkillResult) (app.SkillScoreChange, error) {
	var prior *int
	existing, err := scores.Get(ctx, a.UserID, r.SkillID)
	switch {
	case err == nil:
		prior = &existing.Proficiency
	case !errors.Is(err, repository.ErrNotFound):
		return app.SkillScoreChange{}, err
	}

	attemptScore := skillgap.AttemptScore(r.PointsEarned, r.MaxPoints)
	next := skillgap.Blend(prior, attemptScore)
	if err := scores.Upsert(ctx, &domain.UserSkillScore{
		UserID:      a.UserID,
		SkillID:     r.SkillID,
		Proficiency: next,
		UpdatedAt:   a.CreatedAt,
	}); err != nil {
		return app.SkillScoreChange{}, err
	}

	return app.SkillScoreChange{
		SkillID:      r.SkillID,
		Previous:     prior,
		AttemptScore: attemptScore,
		Proficiency:  next,
		Category:     skillgap.Classify(float64(next)),
	}, nil
}

// updateRoadmap runs the best-effort steps after scores are committed. Each
// step is idempotent, so a retry or a later Generate converges.
func (s *attemptService) updateRoadmap(ctx context.Context, a *domain.Attempt, snap *domain.Catalog, roleID string, result *app.IngestResult) error {
	if len(result.Scores) == 0 {
		return nil
	}

	g, _ := buildGraph(ctx, snap, s.logger)
	weightOf, roleSet := roleSkillSet(snap.RoleWeights(roleID))
	now := time.Now().UTC()

	for _, c := range result.Scores {
		w, ok := weightOf[c.SkillID]
		if !ok {
			continue
		}
		e := &domain.RoadmapEntry{
			UserID:    a.UserID,
			RoleID:    roleID,
			SkillID:   c.SkillID,
			Category:  c.Category,
			Priority:  skillgap.Priority(float64(c.Proficiency), w, g.Bonus(c.SkillID, roleSet)),
			UpdatedAt: now,
		}
		err := s.roadmap.UpdateClassification(ctx, e)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return persistenceErr("refreshing roadmap entry", err)
		}
		result.Refreshed++
	}

	if a.Kind == domain.ContextAssessment {
		if err := s.raiseProgress(ctx, a.UserID, roleID, result, now); err != nil {
			return err
		}
	}

	var mastered []string
	for _, c := range result.Scores {
		if c.Proficiency >= domain.MasteryThreshold {
			mastered = append(mastered, c.SkillID)
		}
	}
	for _, skillID := range g.UnlockCandidates(mastered) {
		inserted, err := s.roadmap.InsertIfAbsent(ctx, domain.NewUnlockedEntry(a.UserID, roleID, skillID, now))
		if err != nil {
			return persistenceErr("unlocking roadmap entry", err)
		}
		if inserted {
			result.Unlocked = append(result.Unlocked, skillID)
		}
	}
	return nil
}

// raiseProgress moves entry progress up to the skill's attempt score. It
// never lowers progress.
func (s *attemptService) raiseProgress(ctx context.Context, userID, roleID string, result *app.IngestResult, now time.Time) error {
	for _, c := range result.Scores {
		e, err := s.roadmap.Get(ctx, userID, roleID, c.SkillID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return persistenceErr("loading roadmap entry", err)
		}
		if !e.RaiseProgress(int(math.Round(c.AttemptScore)), now) {
			continue
		}
		if err := s.roadmap.UpdateProgress(ctx, e); err != nil {
			return persistenceErr("raising progress", err)
		}
		result.ProgressRaised = append(result.ProgressRaised, c.SkillID)
	}
	return nil
}

// rewardFor applies the reward policy of the attempt's context. Daily tests
// pay flat XP; practice tests pay per correct answer at the level's base
// value; assessments pay nothing.
func rewardFor(a *domain.Attempt) int {
	switch a.Kind {
	case domain.ContextDaily:
		return skillgap.DailyXP(a.CorrectCount)
	case domain.ContextPractice:
		return skillgap.PracticePoints(a.DifficultyLevel, a.CorrectCount)
	default:
		return 0
	}
}
