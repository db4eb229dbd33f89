package workout

import (
	"context"

	"github.com/rpggio/liftlog/internal/domain/activity"
)

// Repository persists the full entry snapshot.
type Repository interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// ActivityRepository logs entry mutations.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
