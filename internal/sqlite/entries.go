package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/repository"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	_ repository.EntryRepository    = (*EntryRepository)(nil)
	_ repository.ActivityRepository = (*ActivityRepository)(nil)
)

// EntryRepository implements repository.EntryRepository for SQLite. The
// whole log is stored as one snapshot; positions preserve slice order.
type EntryRepository struct {
	db *DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Load returns every entry with its exercises and sets in saved order
func (r *EntryRepository) Load(ctx context.Context) ([]workout.Entry, error) {
	entries := []workout.Entry{}
	entryIdx := make(map[string]int)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, plan_key, plan_label, created_at
		FROM entries
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	for rows.Next() {
		var e workout.Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Date, &e.PlanKey, &e.PlanLabel, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		e.Exercises = []workout.Exercise{}
		entryIdx[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	type exerciseRef struct{ entry, exercise int }
	exerciseIdx := make(map[string]exerciseRef)

	rows, err = r.db.QueryContext(ctx, `
		SELECT id, entry_id, name
		FROM exercises
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}
	for rows.Next() {
		var ex workout.Exercise
		var entryID string
		if err := rows.Scan(&ex.ID, &entryID, &ex.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		i, ok := entryIdx[entryID]
		if !ok {
			continue
		}
		ex.Sets = []workout.Set{}
		exerciseIdx[ex.ID] = exerciseRef{entry: i, exercise: len(entries[i].Exercises)}
		entries[i].Exercises = append(entries[i].Exercises, ex)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("error iterating exercise rows: %w", err)
	}

	rows, err = r.db.QueryContext(ctx, `
		SELECT id, exercise_id, reps, weight
		FROM sets
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load sets: %w", err)
	}
	for rows.Next() {
		var s workout.Set
		var exerciseID string
		if err := rows.Scan(&s.ID, &exerciseID, &s.Reps, &s.Weight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan set: %w", err)
		}
		ref, ok := exerciseIdx[exerciseID]
		if !ok {
			continue
		}
		ex := &entries[ref.entry].Exercises[ref.exercise]
		ex.Sets = append(ex.Sets, s)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("error iterating set rows: %w", err)
	}

	return entries, nil
}

// Save replaces the stored snapshot with entries in a single transaction
func (r *EntryRepository) Save(ctx context.Context, entries []workout.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"sets", "exercises", "entries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	entryStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (id, position, date, plan_key, plan_label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer entryStmt.Close()

	exerciseStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO exercises (id, entry_id, position, name)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare exercise insert: %w", err)
	}
	defer exerciseStmt.Close()

	setStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sets (id, exercise_id, position, reps, weight)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare set insert: %w", err)
	}
	defer setStmt.Close()

	exercisePos, setPos := 0, 0
	for i, e := range entries {
		if _, err := entryStmt.ExecContext(ctx, e.ID, i, e.Date, e.PlanKey, e.PlanLabel, e.CreatedAt.UnixMilli()); err != nil {
			return insertError("entry", e.ID, err)
		}
		for _, ex := range e.Exercises {
			if _, err := exerciseStmt.ExecContext(ctx, ex.ID, e.ID, exercisePos, ex.Name); err != nil {
				return insertError("exercise", ex.ID, err)
			}
			exercisePos++
			for _, s := range ex.Sets {
				if _, err := setStmt.ExecContext(ctx, s.ID, ex.ID, setPos, s.Reps, s.Weight); err != nil {
					return insertError("set", s.ID, err)
				}
				setPos++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entries: %w", err)
	}
	return nil
}

func insertError(kind, id string, err error) error {
	if isDuplicateKey(err) {
		return fmt.Errorf("duplicate %s id %q: %w", kind, id, repository.ErrInvalidInput)
	}
	return fmt.Errorf("failed to insert %s: %w", kind, err)
}

// isDuplicateKey reports whether err is a primary key or unique constraint
// failure from the driver.
func isDuplicateKey(err error) bool {
	var sqlErr *sqlitedriver.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	switch sqlErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

type rowCloser interface {
	Err() error
	Close() error
}

func closeRows(rows rowCloser) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
