package workout_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rpggio/liftlog/internal/domain/plan"
	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

var fixedNow = time.Date(2024, time.March, 6, 18, 30, 0, 123456789, time.UTC)

func TestCleanDraft(t *testing.T) {
	draft := workout.Draft{
		Date:    "2024-03-04",
		PlanKey: "D3",
		Exercises: []workout.DraftExercise{
			{Name: "  Squat ", Sets: []workout.DraftSet{{Reps: "5", Weight: 100.0}, {Reps: "", Weight: "abc"}}},
			{Name: "   ", Sets: []workout.DraftSet{{Reps: 10, Weight: 10}}},
			{Name: "Leg Press", Sets: []workout.DraftSet{{Reps: -4, Weight: "80"}}},
		},
	}

	entry, err := workout.CleanDraft(draft, plan.Default(), sequentialIDs(), fixedNow)
	require.NoError(t, err)
	require.Equal(t, "2024-03-04", entry.Date)
	require.Equal(t, "D3", entry.PlanKey)
	require.Equal(t, "Day 3: Legs", entry.PlanLabel)
	require.Equal(t, fixedNow.Truncate(time.Millisecond), entry.CreatedAt)
	require.NotEmpty(t, entry.ID)

	require.Len(t, entry.Exercises, 2)
	require.Equal(t, "Squat", entry.Exercises[0].Name)
	require.Equal(t, []workout.Set{
		{ID: "id1", Reps: 5, Weight: 100},
		{ID: "id2", Reps: 0, Weight: 0},
	}, entry.Exercises[0].Sets)
	require.Equal(t, "Leg Press", entry.Exercises[1].Name)
	require.Equal(t, 0.0, entry.Exercises[1].Sets[0].Reps)
	require.Equal(t, 80.0, entry.Exercises[1].Sets[0].Weight)
}

func TestCleanDraft_Defaults(t *testing.T) {
	draft := workout.Draft{
		Exercises: []workout.DraftExercise{{Name: "Plank"}},
	}
	entry, err := workout.CleanDraft(draft, plan.Default(), sequentialIDs(), fixedNow)
	require.NoError(t, err)
	require.Equal(t, fixedNow.Format(workout.DateLayout), entry.Date)
	require.Equal(t, "D1", entry.PlanKey)
	require.Equal(t, "Day 1: Chest + Triceps", entry.PlanLabel)
	require.NotNil(t, entry.Exercises[0].Sets)
	require.Empty(t, entry.Exercises[0].Sets)
}

func TestCleanDraft_UnknownPlanFallsBackToKey(t *testing.T) {
	draft := workout.Draft{
		Date:      "2024-03-04",
		PlanKey:   "Travel",
		Exercises: []workout.DraftExercise{{Name: "Push Up"}},
	}
	entry, err := workout.CleanDraft(draft, plan.Default(), sequentialIDs(), fixedNow)
	require.NoError(t, err)
	require.Equal(t, "Travel", entry.PlanLabel)
}

func TestCleanDraft_Rejections(t *testing.T) {
	catalog := plan.Default()

	_, err := workout.CleanDraft(workout.Draft{}, catalog, sequentialIDs(), fixedNow)
	require.ErrorIs(t, err, workout.ErrEmptySession)

	_, err = workout.CleanDraft(workout.Draft{
		Exercises: []workout.DraftExercise{{Name: "", Sets: []workout.DraftSet{{Reps: 10, Weight: 20}}}},
	}, catalog, sequentialIDs(), fixedNow)
	require.ErrorIs(t, err, workout.ErrEmptySession)

	_, err = workout.CleanDraft(workout.Draft{
		Date:      "04/03/2024",
		Exercises: []workout.DraftExercise{{Name: "Squat"}},
	}, catalog, sequentialIDs(), fixedNow)
	require.ErrorIs(t, err, workout.ErrInvalidDate)
}

func TestDisplayDate(t *testing.T) {
	require.Equal(t, "04/03/2024", workout.DisplayDate("2024-03-04"))
	require.Equal(t, "soon", workout.DisplayDate("soon"))
}
