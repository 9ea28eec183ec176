package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepo_UpsertAndSnapshot(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertSkill(ctx, &domain.Skill{ID: "go", Name: "Go", Category: "lang"}))
	require.NoError(t, repo.UpsertSkill(ctx, &domain.Skill{ID: "sql", Name: "SQL", Category: "data"}))
	require.NoError(t, repo.UpsertRole(ctx, &domain.Role{ID: "be", Name: "Backend"}))
	require.NoError(t, repo.SetRoleSkill(ctx, &domain.RoleSkillWeight{RoleID: "be", SkillID: "sql", Weight: 0.6, Order: 0}))
	require.NoError(t, repo.SetRoleSkill(ctx, &domain.RoleSkillWeight{RoleID: "be", SkillID: "go", Weight: 0.9, Order: 1}))
	require.NoError(t, repo.AddDependency(ctx, &domain.SkillDependency{PrerequisiteSkillID: "go", DependentSkillID: "sql"}))

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Skills, 2)
	assert.Equal(t, []domain.Role{{ID: "be", Name: "Backend"}}, snap.Roles)
	require.Len(t, snap.Weights, 2)
	assert.Equal(t, "sql", snap.Weights[0].SkillID, "weights keep catalog order")
	assert.Equal(t, []domain.SkillDependency{{PrerequisiteSkillID: "go", DependentSkillID: "sql"}}, snap.Dependencies)
}

func TestCatalogRepo_UpsertIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertSkill(ctx, &domain.Skill{ID: "go", Name: "Go"}))
	require.NoError(t, repo.UpsertSkill(ctx, &domain.Skill{ID: "go", Name: "Golang"}))
	require.NoError(t, repo.UpsertRole(ctx, &domain.Role{ID: "be", Name: "Backend"}))
	require.NoError(t, repo.SetRoleSkill(ctx, &domain.RoleSkillWeight{RoleID: "be", SkillID: "go", Weight: 0.5}))
	require.NoError(t, repo.SetRoleSkill(ctx, &domain.RoleSkillWeight{RoleID: "be", SkillID: "go", Weight: 0.8}))
	require.NoError(t, repo.AddDependency(ctx, &domain.SkillDependency{PrerequisiteSkillID: "go", DependentSkillID: "go"}))
	require.NoError(t, repo.AddDependency(ctx, &domain.SkillDependency{PrerequisiteSkillID: "go", DependentSkillID: "go"}))

	skills, err := repo.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Golang", skills[0].Name)

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	weights := snap.RoleWeights("be")
	require.Len(t, weights, 1)
	assert.Equal(t, 0.8, weights[0].Weight)

	deps, err := repo.ListDependencies(ctx)
	require.NoError(t, err)
	assert.Len(t, deps, 1, "self loops are stored once; the engine tolerates them")
}

func TestCatalogRepo_GetRole_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)

	_, err := repo.GetRole(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepo_RejectsWeightForUnknownSkill(t *testing.T) {
	db := testutil.NewSeededDB(t, testutil.NewTestCatalog(testutil.WithRole("be")))
	repo := NewSQLiteCatalogRepo(db)

	err := repo.SetRoleSkill(context.Background(), &domain.RoleSkillWeight{RoleID: "be", SkillID: "ghost", Weight: 0.5})
	require.Error(t, err, "foreign key on skills must hold")
}

func TestUserRoleRepo_SetAndGet(t *testing.T) {
	db := testutil.NewSeededDB(t, testutil.NewTestCatalog(testutil.WithRole("be"), testutil.WithRole("fe")))
	repo := NewSQLiteUserRoleRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Set(ctx, &domain.UserRole{UserID: "u1", RoleID: "be"}))
	require.NoError(t, repo.Set(ctx, &domain.UserRole{UserID: "u1", RoleID: "fe"}))

	ur, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "fe", ur.RoleID)
	assert.False(t, ur.UpdatedAt.IsZero())
}
