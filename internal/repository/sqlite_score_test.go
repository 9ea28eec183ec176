package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewSeededDB(t, testutil.NewTestCatalog(testutil.WithSkills("go", "sql")))
	repo := NewSQLiteScoreRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1", "go")
	require.ErrorIs(t, err, ErrNotFound)

	at := time.Date(2025, 3, 1, 9, 30, 0, 123, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &domain.UserSkillScore{UserID: "u1", SkillID: "go", Proficiency: 60, UpdatedAt: at}))
	require.NoError(t, repo.Upsert(ctx, &domain.UserSkillScore{UserID: "u1", SkillID: "go", Proficiency: 69, UpdatedAt: at.Add(time.Hour)}))

	s, err := repo.Get(ctx, "u1", "go")
	require.NoError(t, err)
	assert.Equal(t, 69, s.Proficiency)
	assert.True(t, s.UpdatedAt.Equal(at.Add(time.Hour)))
}

func TestScoreRepo_ListByUser_ScopedToUser(t *testing.T) {
	db := testutil.NewSeededDB(t, testutil.NewTestCatalog(testutil.WithSkills("go", "sql")))
	repo := NewSQLiteScoreRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.UserSkillScore{UserID: "u1", SkillID: "sql", Proficiency: 10}))
	require.NoError(t, repo.Upsert(ctx, &domain.UserSkillScore{UserID: "u1", SkillID: "go", Proficiency: 20}))
	require.NoError(t, repo.Upsert(ctx, &domain.UserSkillScore{UserID: "u2", SkillID: "go", Proficiency: 90}))

	scores, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "go", scores[0].SkillID)
	assert.Equal(t, 20, scores[0].Proficiency)
}

func TestScoreRepo_RejectsOutOfRange(t *testing.T) {
	db := testutil.NewSeededDB(t, testutil.NewTestCatalog(testutil.WithSkills("go")))
	repo := NewSQLiteScoreRepo(db)

	err := repo.Upsert(context.Background(), &domain.UserSkillScore{UserID: "u1", SkillID: "go", Proficiency: 101})
	require.Error(t, err)
}
