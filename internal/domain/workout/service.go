package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/plan"
)

// Service handles workout log operations.
type Service struct {
	store      *Store
	activities ActivityRepository
	catalog    plan.Catalog
	exercises  []string
	logger     *slog.Logger
	newID      func() string
	now        func() time.Time
}

// Options configures optional service collaborators.
type Options struct {
	Catalog       plan.Catalog
	BaseExercises []string
	NewID         func() string
	Now           func() time.Time
}

// NewService creates a new workout service.
func NewService(store *Store, activities ActivityRepository, opts Options, logger *slog.Logger) *Service {
	catalog := opts.Catalog
	if len(catalog) == 0 {
		catalog = plan.Default()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:      store,
		activities: activities,
		catalog:    catalog,
		exercises:  opts.BaseExercises,
		logger:     logger,
		newID:      newID,
		now:        now,
	}
}

// SaveResult reports a saved entry and whether it reached durable storage.
type SaveResult struct {
	Entry     Entry `json:"entry"`
	Persisted bool  `json:"persisted"`
}

// MutationResult reports the outcome of a delete or clear.
type MutationResult struct {
	Removed   int  `json:"removed"`
	Persisted bool `json:"persisted"`
}

// Save validates a draft and prepends the resulting entry to the log.
func (s *Service) Save(ctx context.Context, draft Draft) (*SaveResult, error) {
	entry, err := CleanDraft(draft, s.catalog, s.newID, s.now())
	if err != nil {
		return nil, err
	}

	persisted, err := s.persisted(s.store.Append(ctx, entry))
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, &activity.ActivityEntry{
		EntryID:      &entry.ID,
		ActivityType: activity.TypeEntrySaved,
		Summary:      fmt.Sprintf("saved %s on %s", entry.PlanLabel, entry.Date),
	})

	return &SaveResult{Entry: entry, Persisted: persisted}, nil
}

// Delete removes a single entry.
func (s *Service) Delete(ctx context.Context, id string) (*MutationResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEntryNotFound
	}
	removed, err := s.store.Remove(ctx, id)
	if !removed && err == nil {
		return nil, ErrEntryNotFound
	}
	persisted, err := s.persisted(err)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, &activity.ActivityEntry{
		EntryID:      &id,
		ActivityType: activity.TypeEntryDeleted,
		Summary:      fmt.Sprintf("deleted entry %s", id),
	})

	return &MutationResult{Removed: 1, Persisted: persisted}, nil
}

// Clear removes every entry.
func (s *Service) Clear(ctx context.Context) (*MutationResult, error) {
	count, err := s.store.Clear(ctx)
	persisted, err := s.persisted(err)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, &activity.ActivityEntry{
		ActivityType: activity.TypeLogCleared,
		Summary:      fmt.Sprintf("cleared %d entries", count),
	})

	return &MutationResult{Removed: count, Persisted: persisted}, nil
}

// Get returns the entry with id.
func (s *Service) Get(_ context.Context, id string) (*Entry, error) {
	for _, e := range s.store.List() {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrEntryNotFound
}

// History returns entries newest date first. Entries sharing a date keep
// their store order.
func (s *Service) History(_ context.Context) []Entry {
	entries := s.store.List()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries
}

// Plans returns the configured plan catalog.
func (s *Service) Plans() plan.Catalog {
	return s.catalog
}

// Suggestions returns the base exercise names plus every name in the log,
// trimmed, de-duplicated and sorted case-insensitively.
func (s *Service) Suggestions(_ context.Context) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range s.exercises {
		add(name)
	}
	for _, e := range s.store.List() {
		for _, ex := range e.Exercises {
			add(ex.Name)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
	return names
}

// persisted turns a store error into the Persisted flag. Persistence
// failures are logged and reported, while any other error is returned.
func (s *Service) persisted(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrPersistence) {
		if s.logger != nil {
			s.logger.Warn("entry log not persisted", "error", err)
		}
		return false, nil
	}
	return false, err
}

func (s *Service) logActivity(ctx context.Context, entry *activity.ActivityEntry) {
	if s.activities == nil {
		return
	}
	if err := s.activities.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to log activity", "type", entry.ActivityType, "error", err)
	}
}
