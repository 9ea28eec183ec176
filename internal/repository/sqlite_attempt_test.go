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

func TestAttemptRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewSeededDB(t, testutil.NewTestCatalog(testutil.WithSkills("go", "sql")))
	repo := NewSQLiteAttemptRepo(db)
	ctx := context.Background()

	a := testutil.NewTestAttempt("u1",
		testutil.WithKind(domain.ContextDaily),
		testutil.WithLevel(3),
		testutil.WithCounts(4, 5),
		testutil.WithSkillScore("go", 80),
		testutil.WithSkillScore("sql", 40),
	)
	a.XP = 70
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContextDaily, got.Kind)
	assert.Equal(t, 3, got.DifficultyLevel)
	assert.Equal(t, 4, got.CorrectCount)
	assert.Equal(t, 70, got.XP)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "go", got.Results[0].SkillID)
	assert.Equal(t, 80.0, got.Results[0].PointsEarned)

	var stored float64
	require.NoError(t, db.QueryRow(
		`SELECT attempt_score FROM attempt_skill_results WHERE attempt_id = ? AND skill_id = 'sql'`, a.ID,
	).Scan(&stored))
	assert.Equal(t, 40.0, stored)
}

func TestAttemptRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewSQLiteAttemptRepo(db).GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAttemptRepo_ListRecent_PerKindMostRecentFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAttemptRepo(db)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		a := testutil.NewTestAttempt("u1",
			testutil.WithKind(domain.ContextDaily),
			testutil.WithLevel(1+i%5),
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)),
		)
		require.NoError(t, repo.Create(ctx, a))
	}
	practice := testutil.NewTestAttempt("u1", testutil.WithKind(domain.ContextPractice),
		testutil.WithCreatedAt(base.Add(24*time.Hour)))
	require.NoError(t, repo.Create(ctx, practice))
	other := testutil.NewTestAttempt("u2", testutil.WithKind(domain.ContextDaily),
		testutil.WithCreatedAt(base.Add(48*time.Hour)))
	require.NoError(t, repo.Create(ctx, other))

	recent, err := repo.ListRecent(ctx, "u1", domain.ContextDaily, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	for i := 1; i < len(recent); i++ {
		assert.True(t, recent[i-1].CreatedAt.After(recent[i].CreatedAt), "most recent first")
	}
	assert.Equal(t, 2, recent[0].DifficultyLevel, "7th attempt: 1+6%5")

	practices, err := repo.ListRecent(ctx, "u1", domain.ContextPractice, 5)
	require.NoError(t, err)
	assert.Len(t, practices, 1, "histories never mix kinds")
}

func TestAttemptRepo_ListRecent_SameInstantUsesInsertOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAttemptRepo(db)
	ctx := context.Background()

	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	first := testutil.NewTestAttempt("u1", testutil.WithLevel(1), testutil.WithCreatedAt(at))
	second := testutil.NewTestAttempt("u1", testutil.WithLevel(4), testutil.WithCreatedAt(at))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	recent, err := repo.ListRecent(ctx, "u1", domain.ContextPractice, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)
}

func TestAttemptRepo_ListRecent_SubSecondOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAttemptRepo(db)
	ctx := context.Background()

	second := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	later := testutil.NewTestAttempt("u1", testutil.WithLevel(5), testutil.WithCreatedAt(second.Add(120*time.Millisecond)))
	earlier := testutil.NewTestAttempt("u1", testutil.WithLevel(1), testutil.WithCreatedAt(second.Add(100*time.Millisecond)))
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	recent, err := repo.ListRecent(ctx, "u1", domain.ContextPractice, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, later.ID, recent[0].ID)
	assert.Equal(t, 5, recent[0].DifficultyLevel)
	assert.True(t, recent[0].CreatedAt.Equal(later.CreatedAt))
}

func TestFormatTime_FixedWidth(t *testing.T) {
	whole := formatTime(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	frac := formatTime(time.Date(2025, 5, 1, 10, 0, 0, 120_000_000, time.UTC))

	assert.Len(t, frac, len(whole))
	assert.Less(t, whole, frac)
	assert.True(t, parseTime(frac).Equal(time.Date(2025, 5, 1, 10, 0, 0, 120_000_000, time.UTC)))
}
