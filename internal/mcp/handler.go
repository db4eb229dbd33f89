package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/plan"
	"github.com/rpggio/liftlog/internal/domain/stats"
	"github.com/rpggio/liftlog/internal/domain/workout"
)

var errInvalidParams = errors.New("invalid params")

// WorkoutService defines workout log operations needed by MCP.
type WorkoutService interface {
	Save(ctx context.Context, draft workout.Draft) (*workout.SaveResult, error)
	Delete(ctx context.Context, id string) (*workout.MutationResult, error)
	Clear(ctx context.Context) (*workout.MutationResult, error)
	Get(ctx context.Context, id string) (*workout.Entry, error)
	History(ctx context.Context) []workout.Entry
	Plans() plan.Catalog
	Suggestions(ctx context.Context) []string
}

// StatsService defines weekly statistics needed by MCP.
type StatsService interface {
	Weekly(ctx context.Context, limit int) []stats.WeekSummary
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Workouts WorkoutService
	Stats    StatsService
	Activity ActivityService
}

// Handler dispatches MCP commands.
type Handler struct {
	workouts WorkoutService
	stats    StatsService
	activity ActivityService
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services) *Handler {
	return &Handler{
		workouts: services.Workouts,
		stats:    services.Stats,
		activity: services.Activity,
	}
}

// Handle dispatches tool calls to domain services.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "save_entry":
		var req SaveEntryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, mapError(err)
		}
		result, err := h.workouts.Save(ctx, workout.Draft{
			Date:      req.Date,
			PlanKey:   req.PlanKey,
			Exercises: req.Exercises,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return SaveEntryResponse{Entry: toEntryResponse(result.Entry), Persisted: result.Persisted}, nil
	case "delete_entry":
		var req EntryIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, mapError(err)
		}
		result, err := h.workouts.Delete(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return MutationResponse{Removed: result.Removed, Persisted: result.Persisted}, nil
	case "clear_entries":
		result, err := h.workouts.Clear(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return MutationResponse{Removed: result.Removed, Persisted: result.Persisted}, nil
	case "get_entry":
		var req EntryIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, mapError(err)
		}
		entry, err := h.workouts.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return toEntryResponse(*entry), nil
	case "list_entries":
		var req ListEntriesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, mapError(err)
		}
		history := h.workouts.History(ctx)
		total := len(history)
		if req.Limit > 0 && req.Limit < total {
			history = history[:req.Limit]
		}
		resp := ListEntriesResponse{Entries: make([]EntryResponse, 0, len(history)), Total: total}
		for _, e := range history {
			resp.Entries = append(resp.Entries, toEntryResponse(e))
		}
		return resp, nil
	case "weekly_stats":
		var req WeeklyStatsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, mapError(err)
		}
		return WeeklyStatsResponse{Weeks: h.stats.Weekly(ctx, req.Limit)}, nil
	case "list_plans":
		plans := h.workouts.Plans()
		resp := ListPlansResponse{Plans: make([]plan.Plan, 0, len(plans))}
		resp.Plans = append(resp.Plans, plans...)
		return resp, nil
	case "exercise_suggestions":
		names := h.workouts.Suggestions(ctx)
		if names == nil {
			names = []string{}
		}
		return SuggestionsResponse{Exercises: names}, nil
	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, mapError(err)
		}
		opts := activity.ListActivityOptions{
			EntryID: req.EntryID,
			Limit:   req.Limit,
			Offset:  req.Offset,
		}
		if req.Type != "" {
			activityType := activity.ActivityType(req.Type)
			opts.ActivityType = &activityType
		}
		entries, err := h.activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, mapError(err)
		}
		resp := RecentActivityResponse{Activity: make([]ActivityEntryResponse, 0, len(entries))}
		for _, entry := range entries {
			resp.Activity = append(resp.Activity, ActivityEntryResponse{
				Timestamp: entry.CreatedAt,
				Type:      entry.ActivityType,
				EntryID:   entry.EntryID,
				Summary:   entry.Summary,
				Details:   entry.Details,
			})
		}
		return resp, nil
	default:
		return nil, &APIError{Code: CodeUnknownMethod, Message: fmt.Sprintf("unknown method: %s", method)}
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}
	return nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
