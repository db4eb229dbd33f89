package mocks

import (
	"context"

	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/repository"
	"github.com/stretchr/testify/mock"
)

var (
	_ repository.EntryRepository    = (*EntryRepository)(nil)
	_ repository.ActivityRepository = (*ActivityRepository)(nil)
)

// EntryRepository is a mock for repository.EntryRepository.
type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Load(ctx context.Context) ([]workout.Entry, error) {
	args := m.Called(ctx)
	if entries, ok := args.Get(0).([]workout.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) Save(ctx context.Context, entries []workout.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if entries, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
