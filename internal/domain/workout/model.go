package workout

import "time"

// Set is one performed unit of an exercise.
type Set struct {
	ID     string  `json:"id"`
	Reps   float64 `json:"reps"`
	Weight float64 `json:"weight"`
}

// Exercise is a named movement within an entry.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// Entry represents one logged workout session
type Entry struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	PlanKey   string     `json:"plan_key"`
	PlanLabel string     `json:"plan_label"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"created_at"`
}

// DraftSet holds raw user input for a set. Reps and Weight may be numbers,
// numeric strings, empty or null.
type DraftSet struct {
	Reps   any `json:"reps,omitempty"`
	Weight any `json:"weight,omitempty"`
}

// DraftExercise holds raw user input for an exercise.
type DraftExercise struct {
	Name string     `json:"name,omitempty"`
	Sets []DraftSet `json:"sets,omitempty"`
}

// Draft is an unsaved session as entered by the user.
type Draft struct {
	Date      string          `json:"date,omitempty"`
	PlanKey   string          `json:"plan_key,omitempty"`
	Exercises []DraftExercise `json:"exercises,omitempty"`
}

// DateLayout is the calendar date format used by Entry.Date.
const DateLayout = "2006-01-02"

// DisplayDate renders an entry date as dd/mm/yyyy, or returns it unchanged
// when it isn't a calendar date.
func DisplayDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
