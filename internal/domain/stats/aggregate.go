package stats

import (
	"sort"
	"strings"

	"github.com/rpggio/liftlog/internal/domain/workout"
)

// TopExerciseCount caps WeekSummary.TopExercises.
const TopExerciseCount = 3

// ExerciseVolume is one exercise's summed volume within a week.
type ExerciseVolume struct {
	Name   string  `json:"name"`
	Volume float64 `json:"volume"`
}

// WeekSummary rolls up every entry whose date falls in one ISO week.
type WeekSummary struct {
	WeekKey      string           `json:"week_key"`
	Volume       float64          `json:"volume"`
	Sets         int              `json:"sets"`
	Reps         float64          `json:"reps"`
	TopExercises []ExerciseVolume `json:"top_exercises"`
}

type weekAccumulator struct {
	summary     WeekSummary
	perExercise map[string]float64
	names       []string
}

// Aggregate folds entries into per-week summaries, ordered by week key
// descending. Exercises are summed by trimmed name across the week and the
// three largest kept; equal volumes are ordered by name.
func Aggregate(entries []workout.Entry) []WeekSummary {
	weeks := make(map[string]*weekAccumulator)
	for _, entry := range entries {
		key := WeekKey(entry.Date)
		acc, ok := weeks[key]
		if !ok {
			acc = &weekAccumulator{
				summary:     WeekSummary{WeekKey: key},
				perExercise: make(map[string]float64),
			}
			weeks[key] = acc
		}

		acc.summary.Volume += workout.EntryVolume(entry)
		acc.summary.Sets += workout.EntrySetCount(entry)
		acc.summary.Reps += workout.EntryRepCount(entry)

		for _, ex := range entry.Exercises {
			name := strings.TrimSpace(ex.Name)
			if name == "" {
				continue
			}
			if _, seen := acc.perExercise[name]; !seen {
				acc.names = append(acc.names, name)
			}
			acc.perExercise[name] += workout.ExerciseVolume(ex)
		}
	}

	summaries := make([]WeekSummary, 0, len(weeks))
	for _, acc := range weeks {
		acc.summary.TopExercises = acc.top(TopExerciseCount)
		summaries = append(summaries, acc.summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WeekKey > summaries[j].WeekKey
	})
	return summaries
}

func (a *weekAccumulator) top(n int) []ExerciseVolume {
	ranked := make([]ExerciseVolume, 0, len(a.names))
	for _, name := range a.names {
		ranked = append(ranked, ExerciseVolume{Name: name, Volume: a.perExercise[name]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Volume != ranked[j].Volume {
			return ranked[i].Volume > ranked[j].Volume
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Recent returns at most n summaries from the front of the list. A
// non-positive n returns all of them.
func Recent(summaries []WeekSummary, n int) []WeekSummary {
	if n <= 0 || n >= len(summaries) {
		return summaries
	}
	return summaries[:n]
}
