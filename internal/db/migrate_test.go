package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"skills", "roles", "role_skills", "skill_dependencies", "user_roles",
		"user_skill_scores", "attempts", "attempt_skill_results", "roadmap_entries",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_role_skills_role", "idx_attempts_user_kind"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestOpenDB_FileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "skillpath.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrate_CheckConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO skills (id, name) VALUES ('go', 'Go')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO roles (id, name) VALUES ('be', 'Backend')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO role_skills (role_id, skill_id, weight) VALUES ('be', 'go', 1.5)`)
	assert.Error(t, err, "weight above 1 must be rejected")

	_, err = db.Exec(`INSERT INTO roadmap_entries (user_id, role_id, skill_id, category, created_at, updated_at)
		VALUES ('u', 'be', 'go', 'Excellent', 'x', 'x')`)
	assert.Error(t, err, "unknown category must be rejected")

	_, err = db.Exec(`INSERT INTO attempts (id, user_id, kind, difficulty_level, created_at)
		VALUES ('a', 'u', 'weekly', 1, 'x')`)
	assert.Error(t, err, "unknown attempt kind must be rejected")
}

// TestMigrate_UpgradeFromLegacySchema simulates a database created before
// attempts carried XP and roadmap entries carried a seq. Existing rows must
// survive, gain defaults, and be numbered per (user, role) in creation order.
func TestMigrate_UpgradeFromLegacySchema(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE skills (id TEXT PRIMARY KEY, name TEXT NOT NULL, category TEXT NOT NULL DEFAULT '')`,
		`CREATE TABLE roles (id TEXT PRIMARY KEY, name TEXT NOT NULL)`,
		`CREATE TABLE attempts (
			id TEXT PRIMARY KEY, user_id TEXT NOT NULL, kind TEXT NOT NULL,
			difficulty_level INTEGER NOT NULL, correct_count INTEGER NOT NULL DEFAULT 0,
			total_count INTEGER NOT NULL DEFAULT 0, created_at TEXT NOT NULL
		)`,
		`CREATE TABLE roadmap_entries (
			user_id TEXT NOT NULL, role_id TEXT NOT NULL, skill_id TEXT NOT NULL,
			category TEXT NOT NULL, priority REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'todo', progress INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL, updated_at TEXT NOT NULL,
			PRIMARY KEY (user_id, role_id, skill_id)
		)`,
		`INSERT INTO attempts (id, user_id, kind, difficulty_level, created_at)
			VALUES ('a1', 'u1', 'daily', 2, '2025-01-01T00:00:00Z')`,
		`INSERT INTO roadmap_entries (user_id, role_id, skill_id, category, created_at, updated_at) VALUES
			('u1', 'be', 'sql', 'Weak', '2025-01-02T00:00:00Z', '2025-01-02T00:00:00Z'),
			('u1', 'be', 'go', 'Missing', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z'),
			('u2', 'be', 'go', 'Strong', '2025-01-03T00:00:00Z', '2025-01-03T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var xp int
	require.NoError(t, db.QueryRow(`SELECT xp FROM attempts WHERE id = 'a1'`).Scan(&xp))
	assert.Equal(t, 0, xp)

	seqOf := func(user, skill string) int {
		var seq int
		require.NoError(t, db.QueryRow(
			`SELECT seq FROM roadmap_entries WHERE user_id = ? AND skill_id = ?`, user, skill).Scan(&seq))
		return seq
	}
	assert.Equal(t, 1, seqOf("u1", "go"))
	assert.Equal(t, 2, seqOf("u1", "sql"))
	assert.Equal(t, 1, seqOf("u2", "go"))

	require.NoError(t, Migrate(db), "second run after upgrade")
	assert.Equal(t, 2, seqOf("u1", "sql"))
}
