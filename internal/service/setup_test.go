package service

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires repositories and services against one in-memory database.
type testEnv struct {
	db       *sql.DB
	catalog  *repository.SQLiteCatalogRepo
	roles    *repository.SQLiteUserRoleRepo
	scores   *repository.SQLiteScoreRepo
	attempts *repository.SQLiteAttemptRepo
	roadmap  *repository.SQLiteRoadmapRepo
	uow      db.UnitOfWork
	logs     *bytes.Buffer
	logger   *slog.Logger
}

// backendCatalog is the shared fixture:
//
//	role "be": go 1.0, sql 0.5, http 0.8 (in that order)
//	edges: go -> http, http -> k8s, sql -> docker
//
// k8s and docker are not role skills.
func backendCatalog() *domain.Catalog {
	return testutil.NewTestCatalog(
		testutil.WithSkills("go", "sql", "http", "k8s", "docker"),
		testutil.WithRole("be", "go", 1.0, "sql", 0.5, "http", 0.8),
		testutil.WithEdge("go", "http"),
		testutil.WithEdge("http", "k8s"),
		testutil.WithEdge("sql", "docker"),
	)
}

func newTestEnv(t *testing.T, c *domain.Catalog) *testEnv {
	t.Helper()
	database := testutil.NewSeededDB(t, c)
	logs := &bytes.Buffer{}
	return &testEnv{
		db:       database,
		catalog:  repository.NewSQLiteCatalogRepo(database),
		roles:    repository.NewSQLiteUserRoleRepo(database),
		scores:   repository.NewSQLiteScoreRepo(database),
		attempts: repository.NewSQLiteAttemptRepo(database),
		roadmap:  repository.NewSQLiteRoadmapRepo(database),
		uow:      testutil.NewTestUoW(database),
		logs:     logs,
		logger:   slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (e *testEnv) roadmapService() RoadmapService {
	return NewRoadmapService(e.catalog, e.roles, e.scores, e.roadmap, e.uow, e.logger)
}

func (e *testEnv) attemptService() AttemptService {
	return NewAttemptService(e.catalog, e.roles, e.attempts, e.roadmap, e.uow, e.logger)
}

func (e *testEnv) setRole(t *testing.T, userID, roleID string) {
	t.Helper()
	require.NoError(t, e.roadmapService().SetRole(context.Background(), userID, roleID))
}

func (e *testEnv) setScore(t *testing.T, userID, skillID string, p int) {
	t.Helper()
	require.NoError(t, e.scores.Upsert(context.Background(), &domain.UserSkillScore{UserID: userID, SkillID: skillID, Proficiency: p}))
}

func (e *testEnv) proficiency(t *testing.T, userID, skillID string) int {
	t.Helper()
	s, err := e.scores.Get(context.Background(), userID, skillID)
	require.NoError(t, err)
	return s.Proficiency
}

func (e *testEnv) entry(t *testing.T, userID, roleID, skillID string) *domain.RoadmapEntry {
	t.Helper()
	got, err := e.roadmap.Get(context.Background(), userID, roleID, skillID)
	require.NoError(t, err)
	return got
}

func skillIDs(entries []*domain.RoadmapEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.SkillID
	}
	return ids
}
