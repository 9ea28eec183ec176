package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

type difficultyService struct {
	attempts  repository.AttemptRepo
	windowFor func(domain.ContextKind) int
	observer  UseCaseObserver
}

// NewDifficultyService creates the difficulty controller. windowFor picks the
// history size per context kind; nil uses skillgap.DefaultWindow.
func NewDifficultyService(
	attempts repository.AttemptRepo,
	windowFor func(domain.ContextKind) int,
	observers ...UseCaseObserver,
) DifficultyService {
	return &difficultyService{
		attempts:  attempts,
		windowFor: windowFor,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *difficultyService) Next(ctx context.Context, userID string, kind domain.ContextKind) (decision *app.DifficultyDecision, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "kind": string(kind)}
	defer observe(ctx, s.observer, "next-difficulty", startedAt, fields, &err)

	policy, err := policyFor(kind)
	if err != nil {
		return nil, err
	}

	window := skillgap.DefaultWindow
	if s.windowFor != nil {
		if n := s.windowFor(kind); n > 0 {
			window = n
		}
	}

	recent, err := s.attempts.ListRecent(ctx, userID, kind, window)
	if err != nil {
		return nil, persistenceErr("loading attempt history", err)
	}
	history := make([]domain.AttemptOutcome, 0, len(recent))
	for _, a := range recent {
		history = append(history, a.Outcome())
	}

	d := skillgap.DecisionFor(skillgap.NextDifficulty(history, policy))
	fields["level"] = d.Level
	fields["history_size"] = len(history)

	return &app.DifficultyDecision{
		UserID:               userID,
		Kind:                 kind,
		Level:                d.Level,
		Label:                d.Label,
		BasePointsPerCorrect: d.BasePointsPerCorrect,
		HistorySize:          len(history),
	}, nil
}

func policyFor(kind domain.ContextKind) (skillgap.DifficultyPolicy, error) {
	switch kind {
	case domain.ContextDaily:
		return skillgap.PolicyRatchet, nil
	case domain.ContextPractice:
		return skillgap.PolicyLastValue, nil
	default:
		return 0, fmt.Errorf("%w: %q", app.ErrNoDifficultyPolicy, kind)
	}
}
