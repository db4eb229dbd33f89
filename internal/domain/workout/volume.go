package workout

// SetVolume returns reps × weight.
func SetVolume(s Set) float64 {
	return Coerce(s.Reps) * Coerce(s.Weight)
}

// ExerciseVolume sums SetVolume over the exercise's sets.
func ExerciseVolume(ex Exercise) float64 {
	var total float64
	for _, s := range ex.Sets {
		total += SetVolume(s)
	}
	return total
}

// EntryVolume sums ExerciseVolume over the entry's exercises.
func EntryVolume(e Entry) float64 {
	var total float64
	for _, ex := range e.Exercises {
		total += ExerciseVolume(ex)
	}
	return total
}

// EntrySetCount counts sets across all exercises.
func EntrySetCount(e Entry) int {
	total := 0
	for _, ex := range e.Exercises {
		total += len(ex.Sets)
	}
	return total
}

// EntryRepCount sums reps across all sets of all exercises.
func EntryRepCount(e Entry) float64 {
	var total float64
	for _, ex := range e.Exercises {
		for _, s := range ex.Sets {
			total += Coerce(s.Reps)
		}
	}
	return total
}
