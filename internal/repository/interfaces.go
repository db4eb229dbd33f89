package repository

import (
	"context"

	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/workout"
)

// EntryRepository persists the workout log as a whole snapshot
type EntryRepository interface {
	Load(ctx context.Context) ([]workout.Entry, error)
	Save(ctx context.Context, entries []workout.Entry) error
}

// ActivityRepository manages activity log persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
	List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}
