package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkoutType string

const (
	WorkoutTypeRun        WorkoutType = "run"
	WorkoutTypeGym        WorkoutType = "gym"
	WorkoutTypeBasketball WorkoutType = "basketball"
	WorkoutTypeSurf       WorkoutType = "surf"
	WorkoutTypeOther      WorkoutType = "other"
)

// WorkoutTypes lists the allowed workout types in their reporting order.
var WorkoutTypes = []WorkoutType{
	WorkoutTypeRun,
	WorkoutTypeGym,
	WorkoutTypeBasketball,
	WorkoutTypeSurf,
	WorkoutTypeOther,
}

type Intensity string

const (
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
)

var Intensities = []Intensity{
	IntensityEasy,
	IntensityModerate,
	IntensityHard,
}

// DateLayout is the only accepted date form. Stored dates compare
// lexicographically in chronological order because of it.
const DateLayout = "2006-01-02"

type Workout struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	Type            WorkoutType        `json:"type" bson:"type"`
	Date            string             `json:"date" bson:"date"`
	DurationMinutes float64            `json:"durationMinutes" bson:"durationMinutes"`
	DistanceKm      *float64           `json:"distanceKm" bson:"distanceKm"`
	Intensity       *Intensity         `json:"intensity" bson:"intensity"`
	Notes           string             `json:"notes" bson:"notes"`
	Tags            []string           `json:"tags" bson:"tags"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Optional marks whether a patch field was supplied. Set with a nil pointer
// Value means the field was supplied as null.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// WorkoutPatch holds the fields of a partial update. Unset fields are left
// untouched by the store.
type WorkoutPatch struct {
	Type            Optional[WorkoutType]
	Date            Optional[string]
	DurationMinutes Optional[float64]
	DistanceKm      Optional[*float64]
	Intensity       Optional[*Intensity]
	Notes           Optional[string]
	Tags            Optional[[]string]
}

// Apply copies every supplied field onto w.
func (p WorkoutPatch) Apply(w *Workout) {
	if p.Type.Set {
		w.Type = p.Type.Value
	}
	if p.Date.Set {
		w.Date = p.Date.Value
	}
	if p.DurationMinutes.Set {
		w.DurationMinutes = p.DurationMinutes.Value
	}
	if p.DistanceKm.Set {
		w.DistanceKm = p.DistanceKm.Value
	}
	if p.Intensity.Set {
		w.Intensity = p.Intensity.Value
	}
	if p.Notes.Set {
		w.Notes = p.Notes.Value
	}
	if p.Tags.Set {
		w.Tags = p.Tags.Value
	}
}
