package workout_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain fails the package if any test leaves goroutines running.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_ConcurrentAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.EntryRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	store := workout.NewStore(repo, nil)

	const writers = 8
	const perWriter = 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id := fmt.Sprintf("w%d-%d", w, i)
				if err := store.Append(ctx, workout.Entry{ID: id, Date: "2024-03-04"}); err != nil {
					t.Error(err)
					return
				}
				_ = store.List()
			}
		}(w)
	}
	wg.Wait()

	entries := store.List()
	require.Len(t, entries, writers*perWriter)
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		require.False(t, seen[e.ID], e.ID)
		seen[e.ID] = true
	}
}

func TestWorkoutService_ConcurrentSaveAndClearCountsEveryEntry(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.EntryRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := workout.NewService(workout.NewStore(repo, nil), nil, workout.Options{}, nil)
	draft := workout.Draft{
		Date:      "2024-03-04",
		Exercises: []workout.DraftExercise{{Name: "Squat", Sets: []workout.DraftSet{{Reps: 5, Weight: 100}}}},
	}

	const writers = 4
	const perWriter = 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := svc.Save(ctx, draft); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	var removed int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			res, err := svc.Clear(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			removed += res.Removed
		}
	}()

	wg.Wait()
	<-done
	require.Equal(t, writers*perWriter, removed+len(svc.History(ctx)))
}
