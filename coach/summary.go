package coach

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang-workoutcoach/models"
)

const (
	// MaxSummaryWorkouts caps how many workouts the report describes.
	MaxSummaryWorkouts = 20

	noWorkoutsSummary = "No workouts"
	unsetIntensity    = "null"
)

// BuildWorkoutSummary reduces workouts to the plain-text report given to
// the language model. Identical input always yields identical text.
func BuildWorkoutSummary(workouts []models.Workout) string {
	if len(workouts) == 0 {
		return noWorkoutsSummary
	}

	recent := make([]models.Workout, len(workouts))
	copy(recent, workouts)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > MaxSummaryWorkouts {
		recent = recent[:MaxSummaryWorkouts]
	}

	byType := make(map[models.WorkoutType]int, len(models.WorkoutTypes))
	var totalMinutes, totalDistance float64
	for _, w := range recent {
		switch w.Type {
		case models.WorkoutTypeRun, models.WorkoutTypeGym, models.WorkoutTypeBasketball, models.WorkoutTypeSurf:
			byType[w.Type]++
		default:
			byType[models.WorkoutTypeOther]++
		}
		if w.Type == models.WorkoutTypeRun && w.DistanceKm != nil {
			totalDistance += *w.DistanceKm
		}
		totalMinutes += w.DurationMinutes
	}

	counts := make([]string, 0, len(models.WorkoutTypes))
	for _, t := range models.WorkoutTypes {
		counts = append(counts, fmt.Sprintf("%s=%d", t, byType[t]))
	}

	lines := make([]string, 0, len(recent)+3)
	lines = append(lines,
		fmt.Sprintf("Total workouts: %d", len(recent)),
		"By type: "+strings.Join(counts, ", "),
		fmt.Sprintf("Total time: %s minutes, Total run distance: %s km", formatNumber(totalMinutes), formatNumber(totalDistance)),
	)

	for _, w := range recent {
		distance := "no distance"
		if w.Type == models.WorkoutTypeRun && w.DistanceKm != nil {
			distance = formatNumber(*w.DistanceKm) + " km"
		}
		lines = append(lines, fmt.Sprintf("%s - %s - %s - %s minutes - %s",
			w.Date, w.Type, distance, formatNumber(w.DurationMinutes), intensityText(w.Intensity)))
	}

	return strings.Join(lines, "\n")
}

// formatNumber prints the shortest form: 5, 5.5, 0.25.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func intensityText(i *models.Intensity) string {
	if i == nil {
		return unsetIntensity
	}
	return string(*i)
}
