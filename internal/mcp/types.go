package mcp

import (
	"time"

	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/plan"
	"github.com/rpggio/liftlog/internal/domain/stats"
	"github.com/rpggio/liftlog/internal/domain/workout"
)

type SaveEntryParams struct {
	Date      string                  `json:"date,omitempty" jsonschema:"session date as YYYY-MM-DD, defaults to today"`
	PlanKey   string                  `json:"plan_key,omitempty" jsonschema:"plan key from list_plans, defaults to the first plan"`
	Exercises []workout.DraftExercise `json:"exercises,omitempty" jsonschema:"exercises with their sets; unnamed exercises are dropped"`
}

type EntryIDParams struct {
	ID string `json:"id" jsonschema:"entry ID"`
}

type ListEntriesParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries, newest date first"`
}

type WeeklyStatsParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of weeks to return, newest first; 0 uses the configured default"`
}

type GetRecentActivityParams struct {
	EntryID *string `json:"entry_id,omitempty" jsonschema:"only activity for this entry"`
	Type    string  `json:"type,omitempty" jsonschema:"entry_saved, entry_deleted or log_cleared"`
	Limit   int     `json:"limit,omitempty"`
	Offset  int     `json:"offset,omitempty"`
}

type ExerciseResponse struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Volume float64       `json:"volume"`
	Sets   []workout.Set `json:"sets"`
}

type EntryResponse struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	DisplayDate string             `json:"display_date"`
	PlanKey     string             `json:"plan_key"`
	PlanLabel   string             `json:"plan_label"`
	Volume      float64            `json:"volume"`
	Sets        int                `json:"sets"`
	Reps        float64            `json:"reps"`
	Exercises   []ExerciseResponse `json:"exercises"`
	CreatedAt   time.Time          `json:"created_at"`
}

type SaveEntryResponse struct {
	Entry     EntryResponse `json:"entry"`
	Persisted bool          `json:"persisted"`
}

type MutationResponse struct {
	Removed   int  `json:"removed"`
	Persisted bool `json:"persisted"`
}

type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

type WeeklyStatsResponse struct {
	Weeks []stats.WeekSummary `json:"weeks"`
}

type ListPlansResponse struct {
	Plans []plan.Plan `json:"plans"`
}

type SuggestionsResponse struct {
	Exercises []string `json:"exercises"`
}

type ActivityEntryResponse struct {
	Timestamp time.Time             `json:"timestamp"`
	Type      activity.ActivityType `json:"type"`
	EntryID   *string               `json:"entry_id,omitempty"`
	Summary   string                `json:"summary"`
	Details   string                `json:"details,omitempty"`
}

type RecentActivityResponse struct {
	Activity []ActivityEntryResponse `json:"activity"`
}

func toEntryResponse(e workout.Entry) EntryResponse {
	exercises := make([]ExerciseResponse, 0, len(e.Exercises))
	for _, ex := range e.Exercises {
		sets := ex.Sets
		if sets == nil {
			sets = []workout.Set{}
		}
		exercises = append(exercises, ExerciseResponse{
			ID:     ex.ID,
			Name:   ex.Name,
			Volume: workout.ExerciseVolume(ex),
			Sets:   sets,
		})
	}
	return EntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		DisplayDate: workout.DisplayDate(e.Date),
		PlanKey:     e.PlanKey,
		PlanLabel:   e.PlanLabel,
		Volume:      workout.EntryVolume(e),
		Sets:        workout.EntrySetCount(e),
		Reps:        workout.EntryRepCount(e),
		Exercises:   exercises,
		CreatedAt:   e.CreatedAt,
	}
}
