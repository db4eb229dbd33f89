package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/repository"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []workout.Entry {
	created := time.Date(2024, time.March, 4, 18, 0, 0, 0, time.UTC)
	return []workout.Entry{
		{
			ID:        "e2",
			Date:      "2024-03-06",
			PlanKey:   "D2",
			PlanLabel: "Day 2: Back + Biceps",
			CreatedAt: created.Add(48 * time.Hour),
			Exercises: []workout.Exercise{
				{ID: "x3", Name: "Row", Sets: []workout.Set{{ID: "s4", Reps: 12, Weight: 42.5}}},
				{ID: "x4", Name: "Plank", Sets: []workout.Set{}},
			},
		},
		{
			ID:        "e1",
			Date:      "2024-03-04",
			PlanKey:   "custom",
			PlanLabel: "custom",
			CreatedAt: created.Add(123 * time.Millisecond),
			Exercises: []workout.Exercise{
				{ID: "x1", Name: "Squat", Sets: []workout.Set{
					{ID: "s1", Reps: 5, Weight: 100},
					{ID: "s2", Reps: 5, Weight: 102.5},
					{ID: "s3", Reps: 0, Weight: 0},
				}},
				{ID: "x2", Name: "Leg Curl", Sets: []workout.Set{{ID: "s5", Reps: 10, Weight: 30}}},
			},
		},
	}
}

func TestEntryRepository_RoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEntryRepository(db)

	entries := sampleEntries()
	require.NoError(t, repo.Save(ctx, entries))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, entries, loaded)
}

func TestEntryRepository_EmptyRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEntryRepository(db)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)

	require.NoError(t, repo.Save(ctx, sampleEntries()))
	require.NoError(t, repo.Save(ctx, []workout.Entry{}))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []workout.Entry{}, loaded)
}

func TestEntryRepository_SaveOverwrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEntryRepository(db)

	entries := sampleEntries()
	require.NoError(t, repo.Save(ctx, entries))
	require.NoError(t, repo.Save(ctx, entries[1:]))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, entries[1:], loaded)

	var sets int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sets`).Scan(&sets))
	require.Equal(t, 4, sets)
}

func TestEntryRepository_DuplicateIDsRollBack(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEntryRepository(db)

	original := sampleEntries()
	require.NoError(t, repo.Save(ctx, original))

	dup := sampleEntries()
	dup[1].ID = dup[0].ID
	err := repo.Save(ctx, dup)
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestIsDuplicateKey(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	const insert = `INSERT INTO entries (id, position, date, plan_key, plan_label, created_at) VALUES ('e1', 0, '2024-03-04', 'D1', 'Day 1', 0)`
	_, err := db.ExecContext(ctx, insert)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert)
	require.Error(t, err)
	require.True(t, isDuplicateKey(fmt.Errorf("insert entry: %w", err)))

	_, err = db.ExecContext(ctx, `INSERT INTO entries (id) VALUES ('e2')`)
	require.Error(t, err)
	require.False(t, isDuplicateKey(err))
	require.False(t, isDuplicateKey(errors.New("UNIQUE constraint failed: entries.id")))
	require.False(t, isDuplicateKey(nil))
}
