package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateCreateBody(t *testing.T, body string) (*Workout, error) {
	t.Helper()
	return ValidateCreate(NormalizeWorkout(decodeBody(t, body)))
}

func requireValidationMessage(t *testing.T, err error, msg string) {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	assert.Equal(t, msg, vErr.Message)
}

func TestValidateCreate_Valid(t *testing.T) {
	w, err := validateCreateBody(t, `{
		"type": "RUN",
		"date": "2024-01-01",
		"durationMinutes": "30",
		"distanceKm": 5,
		"intensity": "easy",
		"notes": "felt good",
		"tags": "morning, park"
	}`)
	require.NoError(t, err)

	assert.Equal(t, WorkoutTypeRun, w.Type)
	assert.Equal(t, "2024-01-01", w.Date)
	assert.Equal(t, 30.0, w.DurationMinutes)
	require.NotNil(t, w.DistanceKm)
	assert.Equal(t, 5.0, *w.DistanceKm)
	require.NotNil(t, w.Intensity)
	assert.Equal(t, IntensityEasy, *w.Intensity)
	assert.Equal(t, "felt good", w.Notes)
	assert.Equal(t, []string{"morning", "park"}, w.Tags)
}

func TestValidateCreate_OptionalDefaults(t *testing.T) {
	w, err := validateCreateBody(t, `{"type":"gym","date":"2024-02-10","durationMinutes":60}`)
	require.NoError(t, err)
	assert.Nil(t, w.DistanceKm)
	assert.Nil(t, w.Intensity)
	assert.Equal(t, "", w.Notes)
	assert.Equal(t, []string{}, w.Tags)
}

func TestValidateCreate_Duration(t *testing.T) {
	_, err := validateCreateBody(t, `{"type":"gym","date":"2024-02-10","durationMinutes":1}`)
	require.NoError(t, err)

	for _, d := range []string{`0`, `-5`, `0.5`, `"abc"`, `null`, `""`} {
		_, err := validateCreateBody(t, `{"type":"gym","date":"2024-02-10","durationMinutes":`+d+`}`)
		requireValidationMessage(t, err, MsgInvalidDuration)
	}

	_, err = validateCreateBody(t, `{"type":"gym","date":"2024-02-10"}`)
	requireValidationMessage(t, err, MsgInvalidDuration)
}

func TestValidateCreate_Date(t *testing.T) {
	for _, d := range []string{`"2024-02-30"`, `"01-02-2024"`, `"2024-1-5"`, `"yesterday"`, `""`, `20240101`} {
		_, err := validateCreateBody(t, `{"type":"gym","date":`+d+`,"durationMinutes":10}`)
		requireValidationMessage(t, err, MsgInvalidDate)
	}
}

func TestValidateCreate_FieldRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{name: "unknown type", body: `{"type":"yoga","date":"2024-01-01","durationMinutes":10}`, msg: MsgInvalidType},
		{name: "missing type", body: `{"date":"2024-01-01","durationMinutes":10}`, msg: MsgInvalidType},
		{name: "negative distance", body: `{"type":"run","date":"2024-01-01","durationMinutes":10,"distanceKm":-1}`, msg: MsgInvalidDistance},
		{name: "text distance", body: `{"type":"run","date":"2024-01-01","durationMinutes":10,"distanceKm":"far"}`, msg: MsgInvalidDistance},
		{name: "unknown intensity", body: `{"type":"run","date":"2024-01-01","durationMinutes":10,"intensity":"EASY"}`, msg: MsgInvalidIntensity},
		{name: "numeric notes", body: `{"type":"run","date":"2024-01-01","durationMinutes":10,"notes":5}`, msg: MsgInvalidNotes},
		{name: "numeric tags", body: `{"type":"run","date":"2024-01-01","durationMinutes":10,"tags":7}`, msg: MsgInvalidTags},
		{name: "tag items", body: `{"type":"run","date":"2024-01-01","durationMinutes":10,"tags":["a",true]}`, msg: MsgInvalidTagItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateCreateBody(t, tt.body)
			requireValidationMessage(t, err, tt.msg)
		})
	}
}

func TestValidateCreate_FirstViolationWins(t *testing.T) {
	// every field is wrong; each step fixes the field reported last
	steps := []struct {
		body string
		msg  string
	}{
		{`{"type":"x","date":"bad","durationMinutes":0,"distanceKm":-1,"intensity":"x","notes":1,"tags":1}`, MsgInvalidType},
		{`{"type":"run","date":"bad","durationMinutes":0,"distanceKm":-1,"intensity":"x","notes":1,"tags":1}`, MsgInvalidDate},
		{`{"type":"run","date":"2024-01-01","durationMinutes":0,"distanceKm":-1,"intensity":"x","notes":1,"tags":1}`, MsgInvalidDuration},
		{`{"type":"run","date":"2024-01-01","durationMinutes":5,"distanceKm":-1,"intensity":"x","notes":1,"tags":1}`, MsgInvalidDistance},
		{`{"type":"run","date":"2024-01-01","durationMinutes":5,"distanceKm":1,"intensity":"x","notes":1,"tags":1}`, MsgInvalidIntensity},
		{`{"type":"run","date":"2024-01-01","durationMinutes":5,"distanceKm":1,"intensity":"hard","notes":1,"tags":1}`, MsgInvalidNotes},
		{`{"type":"run","date":"2024-01-01","durationMinutes":5,"distanceKm":1,"intensity":"hard","notes":"","tags":1}`, MsgInvalidTags},
	}

	for _, step := range steps {
		_, err := validateCreateBody(t, step.body)
		requireValidationMessage(t, err, step.msg)
	}
}

func TestValidatePatch_OnlySuppliedFields(t *testing.T) {
	patch, err := ValidatePatch(NormalizeWorkout(decodeBody(t, `{"notes":"rainy"}`)))
	require.NoError(t, err)

	assert.True(t, patch.Notes.Set)
	assert.Equal(t, "rainy", patch.Notes.Value)
	assert.False(t, patch.Type.Set)
	assert.False(t, patch.Date.Set)
	assert.False(t, patch.DurationMinutes.Set)
	assert.False(t, patch.Tags.Set)
}

func TestValidatePatch_NullClearsOptionalFields(t *testing.T) {
	patch, err := ValidatePatch(NormalizeWorkout(decodeBody(t, `{"distanceKm":null,"intensity":"","tags":null}`)))
	require.NoError(t, err)

	assert.True(t, patch.DistanceKm.Set)
	assert.Nil(t, patch.DistanceKm.Value)
	assert.True(t, patch.Intensity.Set)
	assert.Nil(t, patch.Intensity.Value)
	assert.True(t, patch.Tags.Set)
	assert.Equal(t, []string{}, patch.Tags.Value)
}

func TestValidatePatch_Rules(t *testing.T) {
	tests := []struct {
		body string
		msg  string
	}{
		{`{"type":null}`, MsgInvalidType},
		{`{"type":"swim"}`, MsgInvalidType},
		{`{"date":"2024-13-01"}`, MsgInvalidDate},
		{`{"durationMinutes":0}`, MsgInvalidDuration},
		{`{"durationMinutes":"-3"}`, MsgInvalidDuration},
		{`{"notes":null}`, MsgInvalidNotes},
		{`{"durationMinutes":0,"notes":null}`, MsgInvalidDuration},
	}

	for _, tt := range tests {
		_, err := ValidatePatch(NormalizeWorkout(decodeBody(t, tt.body)))
		requireValidationMessage(t, err, tt.msg)
	}
}

func TestValidatePatch_TypeIsLowerCased(t *testing.T) {
	patch, err := ValidatePatch(NormalizeWorkout(decodeBody(t, `{"type":"SURF","durationMinutes":1}`)))
	require.NoError(t, err)
	assert.Equal(t, Some(WorkoutTypeSurf), patch.Type)
	assert.Equal(t, Some(1.0), patch.DurationMinutes)
}
