package stats

import (
	"context"
	"log/slog"

	"github.com/rpggio/liftlog/internal/domain/workout"
)

// EntrySource provides the current entry snapshot.
type EntrySource interface {
	List() []workout.Entry
}

// Service computes weekly statistics over the live entry list.
type Service struct {
	source       EntrySource
	defaultLimit int
	logger       *slog.Logger
}

// NewService creates a stats service. defaultLimit applies when a caller
// passes a limit of 0; a negative default means no limit.
func NewService(source EntrySource, defaultLimit int, logger *slog.Logger) *Service {
	return &Service{source: source, defaultLimit: defaultLimit, logger: logger}
}

// Weekly recomputes the weekly summaries from the current snapshot.
func (s *Service) Weekly(_ context.Context, limit int) []WeekSummary {
	if limit == 0 {
		limit = s.defaultLimit
	}
	summaries := Aggregate(s.source.List())
	if s.logger != nil {
		for _, sum := range summaries {
			if sum.WeekKey == UnknownWeek {
				s.logger.Debug("entries with unparseable dates grouped under unknown week", "sets", sum.Sets)
			}
		}
	}
	return Recent(summaries, limit)
}
