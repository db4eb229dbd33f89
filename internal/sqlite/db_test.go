package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"entries", "exercises", "sets", "activity_log"}
	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}

	// Migrations are idempotent
	require.NoError(t, db.RunMigrations())
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestExercisesRequireEntry verifies exercises cannot be orphaned
func TestExercisesRequireEntry(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO exercises (id, entry_id, position, name) VALUES (?, ?, ?, ?)`,
		"x1", "missing", 0, "Squat")
	require.Error(t, err, "should fail with invalid entry_id")
}

// TestCascadeDelete verifies deleting an entry removes its children
func TestCascadeDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO entries (id, position, date, plan_key, plan_label, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		"e1", 0, "2024-03-04", "D1", "Day 1", 0)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO exercises (id, entry_id, position, name) VALUES (?, ?, ?, ?)`,
		"x1", "e1", 0, "Squat")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO sets (id, exercise_id, position, reps, weight) VALUES (?, ?, ?, ?, ?)`,
		"s1", "x1", 0, 5, 100)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, "e1")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sets`).Scan(&count))
	require.Equal(t, 0, count)
}
