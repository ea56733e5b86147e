package models

import "strings"

// WorkoutFilter selects workouts by type and an inclusive date range.
// Empty fields do not constrain.
//
// From and To are compared to stored dates as plain strings. That is only
// correct because dates are always stored as zero-padded YYYY-MM-DD.
type WorkoutFilter struct {
	Type string
	From string
	To   string
}

func BuildWorkoutFilter(workoutType, from, to string) WorkoutFilter {
	return WorkoutFilter{
		Type: strings.ToLower(strings.TrimSpace(workoutType)),
		From: strings.TrimSpace(from),
		To:   strings.TrimSpace(to),
	}
}

// Matches reports whether w passes the filter.
func (f WorkoutFilter) Matches(w Workout) bool {
	if f.Type != "" && string(w.Type) != f.Type {
		return false
	}
	if f.From != "" && w.Date < f.From {
		return false
	}
	if f.To != "" && w.Date > f.To {
		return false
	}
	return true
}
