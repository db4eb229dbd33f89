package workout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	e1 := workout.Entry{ID: "e1", Date: "2024-03-04"}
	e2 := workout.Entry{ID: "e2", Date: "2024-03-05"}

	repo := &mocks.EntryRepository{}
	repo.On("Save", ctx, []workout.Entry{e1}).Return(nil).Once()
	repo.On("Save", ctx, []workout.Entry{e2, e1}).Return(nil).Once()

	store := workout.NewStore(repo, nil)
	require.NoError(t, store.Append(ctx, e1))
	require.NoError(t, store.Append(ctx, e2))

	require.Equal(t, []workout.Entry{e2, e1}, store.List())
	require.Equal(t, 2, store.Len())
	repo.AssertExpectations(t)
}

func TestStore_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	e1 := workout.Entry{ID: "e1"}
	e2 := workout.Entry{ID: "e2"}
	e3 := workout.Entry{ID: "e3"}

	repo := &mocks.EntryRepository{}
	repo.On("Load", ctx).Return([]workout.Entry{e3, e2, e1}, nil)
	repo.On("Save", ctx, []workout.Entry{e3, e1}).Return(nil).Once()
	repo.On("Save", ctx, []workout.Entry{}).Return(nil).Once()

	store := workout.NewStore(repo, nil)
	require.NoError(t, store.Load(ctx))

	removed, err := store.Remove(ctx, "e2")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = store.Remove(ctx, "missing")
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, []workout.Entry{e3, e1}, store.List())

	cleared, err := store.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, cleared)
	require.Empty(t, store.List())
	repo.AssertExpectations(t)
}

func TestStore_ListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.EntryRepository{}
	repo.On("Save", ctx, mock.Anything).Return(nil)

	store := workout.NewStore(repo, nil)
	require.NoError(t, store.Append(ctx, workout.Entry{ID: "e1"}))

	list := store.List()
	list[0].ID = "changed"
	require.Equal(t, "e1", store.List()[0].ID)
}

func TestStore_LoadFailureStartsEmpty(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("corrupt")

	repo := &mocks.EntryRepository{}
	repo.On("Load", ctx).Return(nil, boom)

	store := workout.NewStore(repo, nil)
	err := store.Load(ctx)
	require.ErrorIs(t, err, boom)
	require.Empty(t, store.List())
}

func TestStore_SaveFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("read-only")

	repo := &mocks.EntryRepository{}
	repo.On("Save", ctx, mock.Anything).Return(boom)

	store := workout.NewStore(repo, nil)
	err := store.Append(ctx, workout.Entry{ID: "e1"})
	require.ErrorIs(t, err, workout.ErrPersistence)
	require.ErrorIs(t, err, boom)
	require.Len(t, store.List(), 1)
}
