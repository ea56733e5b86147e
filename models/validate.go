package models

import (
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MsgInvalidBody      = "invalid JSON body"
	MsgInvalidType      = "type must be one of: run, gym, basketball, surf, other"
	MsgInvalidDate      = "date needs to be a valid date (yyyy-mm-dd)"
	MsgInvalidDuration  = "durationMinutes needs to be a positive number"
	MsgInvalidDistance  = "distanceKm must be a number >= 0"
	MsgInvalidIntensity = "intensity must be easy, moderate, or hard"
	MsgInvalidNotes     = "notes must be a string"
	MsgInvalidTags      = "tags must be an array or a comma-separated string"
	MsgInvalidTagItems  = "tags array must contain only strings"
)

// ValidationError is a client input error. Only the first failing rule is
// ever reported.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

var (
	typeRule      = "oneof=" + joinValues(WorkoutTypes)
	intensityRule = "oneof=" + joinValues(Intensities)
)

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, " ")
}

// ValidateCreate checks a full workout body and returns the record to store.
func ValidateCreate(in WorkoutInput) (*Workout, error) {
	if err := checkFields(in, false); err != nil {
		return nil, err
	}

	workout := &Workout{
		Type:            WorkoutType(in.Type.Value),
		Date:            in.Date.Value,
		DurationMinutes: in.DurationMinutes.Value,
		DistanceKm:      in.DistanceKm.Value,
		Notes:           in.Notes.Value,
		Tags:            in.Tags.Value,
	}
	if in.Intensity.Value != nil {
		intensity := Intensity(*in.Intensity.Value)
		workout.Intensity = &intensity
	}

	return workout, nil
}

// ValidatePatch checks only the supplied fields of a partial update.
func ValidatePatch(in WorkoutInput) (WorkoutPatch, error) {
	if err := checkFields(in, true); err != nil {
		return WorkoutPatch{}, err
	}

	var patch WorkoutPatch
	if in.Type.Present() {
		patch.Type = Some(WorkoutType(in.Type.Value))
	}
	if in.Date.Present() {
		patch.Date = Some(in.Date.Value)
	}
	if in.DurationMinutes.Present() {
		patch.DurationMinutes = Some(in.DurationMinutes.Value)
	}
	if in.DistanceKm.Present() {
		patch.DistanceKm = Some(in.DistanceKm.Value)
	}
	if in.Intensity.Present() {
		var intensity *Intensity
		if in.Intensity.Value != nil {
			v := Intensity(*in.Intensity.Value)
			intensity = &v
		}
		patch.Intensity = Some(intensity)
	}
	if in.Notes.Present() {
		patch.Notes = Some(in.Notes.Value)
	}
	if in.Tags.Present() {
		patch.Tags = Some(in.Tags.Value)
	}

	return patch, nil
}

// checkFields applies the rules in fixed order and stops at the first
// violation. With partial set, absent fields are skipped.
func checkFields(in WorkoutInput, partial bool) error {
	check := func(present bool) bool {
		return !partial || present
	}

	if check(in.Type.Present()) {
		if !in.Type.Valid || validate.Var(in.Type.Value, typeRule) != nil {
			return NewValidationError("type", MsgInvalidType)
		}
	}

	if check(in.Date.Present()) {
		if !in.Date.Valid || validate.Var(in.Date.Value, "required,isodate") != nil {
			return NewValidationError("date", MsgInvalidDate)
		}
	}

	if check(in.DurationMinutes.Present()) {
		d := in.DurationMinutes
		if !d.Present() || !d.Valid || !isFinite(d.Value) || validate.Var(d.Value, "gte=1") != nil {
			return NewValidationError("durationMinutes", MsgInvalidDuration)
		}
	}

	if in.DistanceKm.Present() {
		d := in.DistanceKm
		if !d.Valid || (d.Value != nil && (!isFinite(*d.Value) || validate.Var(*d.Value, "gte=0") != nil)) {
			return NewValidationError("distanceKm", MsgInvalidDistance)
		}
	}

	if in.Intensity.Present() {
		i := in.Intensity
		if !i.Valid || (i.Value != nil && validate.Var(*i.Value, intensityRule) != nil) {
			return NewValidationError("intensity", MsgInvalidIntensity)
		}
	}

	if in.Notes.Present() && !in.Notes.Valid {
		return NewValidationError("notes", MsgInvalidNotes)
	}

	if in.Tags.Present() && !in.Tags.Valid {
		if in.Tags.Kind == KindArray {
			return NewValidationError("tags", MsgInvalidTagItems)
		}
		return NewValidationError("tags", MsgInvalidTags)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
