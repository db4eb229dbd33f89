package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entryID := "e1"
	entry := &activity.ActivityEntry{
		EntryID:      &entryID,
		ActivityType: activity.TypeEntrySaved,
		Summary:      "saved",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListActivityOptions{EntryID: &entryID}).Return([]activity.ActivityEntry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{EntryID: &entryID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)

	require.ErrorIs(t, svc.LogActivity(ctx, nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(ctx, &activity.ActivityEntry{Summary: "x"}), activity.ErrInvalidInput)

	_, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{Limit: -1})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}

func TestActivityService_WrapsRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.Anything).Return(boom)

	svc := activity.NewService(repo, nil)
	err := svc.LogActivity(ctx, &activity.ActivityEntry{ActivityType: activity.TypeLogCleared})
	require.ErrorIs(t, err, boom)
}
