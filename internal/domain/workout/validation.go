package workout

import (
	"strings"
	"time"

	"github.com/rpggio/liftlog/internal/domain/plan"
)

// ValidateDate checks that date is a YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// CleanDraft turns a draft into a saveable Entry. Exercise names are trimmed
// and unnamed exercises dropped; reps and weights are coerced to finite
// non-negative numbers. Every entry, exercise and set receives a fresh ID.
func CleanDraft(draft Draft, catalog plan.Catalog, newID func() string, now time.Time) (Entry, error) {
	exercises := make([]Exercise, 0, len(draft.Exercises))
	for _, dex := range draft.Exercises {
		name := strings.TrimSpace(dex.Name)
		if name == "" {
			continue
		}
		sets := make([]Set, 0, len(dex.Sets))
		for _, ds := range dex.Sets {
			sets = append(sets, Set{
				ID:     newID(),
				Reps:   CoerceNonNegative(ds.Reps),
				Weight: CoerceNonNegative(ds.Weight),
			})
		}
		exercises = append(exercises, Exercise{
			ID:   newID(),
			Name: name,
			Sets: sets,
		})
	}
	if len(exercises) == 0 {
		return Entry{}, ErrEmptySession
	}

	date := strings.TrimSpace(draft.Date)
	if date == "" {
		date = now.Format(DateLayout)
	} else if err := ValidateDate(date); err != nil {
		return Entry{}, err
	}

	planKey := strings.TrimSpace(draft.PlanKey)
	if planKey == "" {
		planKey = catalog.DefaultKey()
	}

	return Entry{
		ID:        newID(),
		Date:      date,
		PlanKey:   planKey,
		PlanLabel: catalog.Label(planKey),
		Exercises: exercises,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}, nil
}
