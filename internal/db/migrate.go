package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRoadmapSeq(db); err != nil {
		return fmt.Errorf("backfilling roadmap seq values: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS skills (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS role_skills (
		role_id     TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		skill_id    TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		weight      REAL NOT NULL CHECK(weight >= 0 AND weight <= 1),
		order_index INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (role_id, skill_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_role_skills_role ON role_skills(role_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS skill_dependencies (
		prerequisite_skill_id TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		dependent_skill_id    TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (prerequisite_skill_id, dependent_skill_id)
	)`,

	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id    TEXT PRIMARY KEY,
		role_id    TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_skill_scores (
		user_id     TEXT NOT NULL,
		skill_id    TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		proficiency INTEGER NOT NULL CHECK(proficiency >= 0 AND proficiency <= 100),
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (user_id, skill_id)
	)`,

	`CREATE TABLE IF NOT EXISTS attempts (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		kind             TEXT NOT NULL
		                 CHECK(kind IN ('daily','practice','assessment')),
		difficulty_level INTEGER NOT NULL CHECK(difficulty_level BETWEEN 1 AND 5),
		correct_count    INTEGER NOT NULL DEFAULT 0,
		total_count      INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attempts_user_kind ON attempts(user_id, kind, created_at)`,

	`CREATE TABLE IF NOT EXISTS attempt_skill_results (
		attempt_id    TEXT NOT NULL REFERENCES attempts(id) ON DELETE CASCADE,
		skill_id      TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		points_earned REAL NOT NULL,
		max_points    REAL NOT NULL CHECK(max_points > 0),
		attempt_score REAL NOT NULL,
		PRIMARY KEY (attempt_id, skill_id)
	)`,

	`CREATE TABLE IF NOT EXISTS roadmap_entries (
		user_id    TEXT NOT NULL,
		role_id    TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		skill_id   TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		category   TEXT NOT NULL
		           CHECK(category IN ('Strong','Moderate','Weak','Missing')),
		priority   REAL NOT NULL DEFAULT 0,
		status     TEXT NOT NULL DEFAULT 'todo'
		           CHECK(status IN ('todo','in_progress','done')),
		progress   INTEGER NOT NULL DEFAULT 0 CHECK(progress >= 0 AND progress <= 100),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, role_id, skill_id)
	)`,

	// XP earned per attempt, stored since the reward policies split.
	`ALTER TABLE attempts ADD COLUMN xp INTEGER NOT NULL DEFAULT 0`,

	// Insertion order of roadmap entries, used to break priority ties.
	`ALTER TABLE roadmap_entries ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillRoadmapSeq numbers entries that predate the seq column,
// per (user, role), in creation order. Idempotent: only rows with seq = 0
// are touched, and numbering continues after the current maximum.
func migrateBackfillRoadmapSeq(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roadmap_entries WHERE seq = 0`).Scan(&pending); err != nil {
		return fmt.Errorf("counting unnumbered roadmap entries: %w", err)
	}
	if pending == 0 {
		return nil
	}

	type key struct{ user, role, skill string }
	rows, err := db.QueryContext(ctx,
		`SELECT user_id, role_id, skill_id FROM roadmap_entries
		 WHERE seq = 0 ORDER BY user_id, role_id, created_at, rowid`)
	if err != nil {
		return fmt.Errorf("listing unnumbered roadmap entries: %w", err)
	}
	var keys []key
	for rows.Next() {
		var k key
		if err := rows.Scan(&k.user, &k.role, &k.skill); err != nil {
			rows.Close()
			return fmt.Errorf("scanning roadmap entry key: %w", err)
		}
		keys = append(keys, k)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating roadmap entry keys: %w", err)
	}

	for _, k := range keys {
		if _, err := db.ExecContext(ctx,
			`UPDATE roadmap_entries SET seq = (
				SELECT COALESCE(MAX(seq), 0) + 1 FROM roadmap_entries
				WHERE user_id = ? AND role_id = ?
			) WHERE user_id = ? AND role_id = ? AND skill_id = ?`,
			k.user, k.role, k.user, k.role, k.skill); err != nil {
			return fmt.Errorf("numbering roadmap entry %s/%s: %w", k.role, k.skill, err)
		}
	}
	return nil
}
