package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// JSONKind is the kind of raw JSON value a field arrived as.
type JSONKind int

const (
	KindMissing JSONKind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// InputField is a normalized request field. Valid is false when the raw
// value could not be coerced into T; the validator decides what that means.
type InputField[T any] struct {
	Kind  JSONKind
	Valid bool
	Value T
}

func (f InputField[T]) Present() bool {
	return f.Kind != KindMissing
}

// WorkoutInput is the strongly typed form of a loosely typed workout body.
type WorkoutInput struct {
	Type            InputField[string]
	Date            InputField[string]
	DurationMinutes InputField[float64]
	DistanceKm      InputField[*float64]
	Intensity       InputField[*string]
	Notes           InputField[string]
	Tags            InputField[[]string]
}

// NormalizeWorkout coerces a decoded JSON object into a WorkoutInput.
// It never fails.
func NormalizeWorkout(body map[string]json.RawMessage) WorkoutInput {
	return WorkoutInput{
		Type:            normalizeType(rawField(body, "type")),
		Date:            normalizeDate(rawField(body, "date")),
		DurationMinutes: normalizeDuration(rawField(body, "durationMinutes")),
		DistanceKm:      normalizeDistance(rawField(body, "distanceKm")),
		Intensity:       normalizeIntensity(rawField(body, "intensity")),
		Notes:           normalizeNotes(rawField(body, "notes")),
		Tags:            NormalizeTags(rawField(body, "tags")),
	}
}

func rawField(body map[string]json.RawMessage, key string) (any, JSONKind) {
	raw, ok := body[key]
	if !ok {
		return nil, KindMissing
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, KindMissing
	}

	switch v.(type) {
	case nil:
		return nil, KindNull
	case string:
		return v, KindString
	case float64:
		return v, KindNumber
	case bool:
		return v, KindBool
	case []any:
		return v, KindArray
	default:
		return v, KindObject
	}
}

func normalizeType(v any, kind JSONKind) InputField[string] {
	if kind != KindString {
		return InputField[string]{Kind: kind}
	}
	return InputField[string]{Kind: kind, Valid: true, Value: strings.ToLower(v.(string))}
}

func normalizeDate(v any, kind JSONKind) InputField[string] {
	if kind != KindString {
		return InputField[string]{Kind: kind}
	}
	return InputField[string]{Kind: kind, Valid: true, Value: v.(string)}
}

func normalizeDuration(v any, kind JSONKind) InputField[float64] {
	n, ok := toNumber(v, kind)
	return InputField[float64]{Kind: kind, Valid: ok, Value: n}
}

func normalizeDistance(v any, kind JSONKind) InputField[*float64] {
	if kind == KindMissing || isBlank(v, kind) {
		return InputField[*float64]{Kind: kind, Valid: true}
	}
	n, ok := toNumber(v, kind)
	return InputField[*float64]{Kind: kind, Valid: ok, Value: &n}
}

func normalizeIntensity(v any, kind JSONKind) InputField[*string] {
	if kind == KindMissing || isBlank(v, kind) {
		return InputField[*string]{Kind: kind, Valid: true}
	}
	if kind != KindString {
		return InputField[*string]{Kind: kind}
	}
	s := v.(string)
	return InputField[*string]{Kind: kind, Valid: true, Value: &s}
}

func normalizeNotes(v any, kind JSONKind) InputField[string] {
	switch kind {
	case KindMissing:
		return InputField[string]{Kind: kind, Valid: true}
	case KindString:
		return InputField[string]{Kind: kind, Valid: true, Value: v.(string)}
	default:
		return InputField[string]{Kind: kind}
	}
}

// NormalizeTags accepts an array of strings or a comma-separated string.
// Elements are trimmed and empty ones dropped; order, duplicates and case
// are kept. The result is never nil.
func NormalizeTags(v any, kind JSONKind) InputField[[]string] {
	tags := InputField[[]string]{Kind: kind, Valid: true, Value: []string{}}

	switch {
	case kind == KindMissing || isBlank(v, kind):
		return tags
	case kind == KindString:
		tags.Value = cleanTags(strings.Split(v.(string), ","))
	case kind == KindArray:
		items := v.([]any)
		parts := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				tags.Valid = false
				continue
			}
			parts = append(parts, s)
		}
		tags.Value = cleanTags(parts)
	default:
		tags.Valid = false
	}

	return tags
}

func cleanTags(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// isBlank is true for JSON null and the empty string, which optional
// fields treat as "unset".
func isBlank(v any, kind JSONKind) bool {
	return kind == KindNull || (kind == KindString && v.(string) == "")
}

// toNumber converts JSON numbers and numeric strings. A blank string is 0.
func toNumber(v any, kind JSONKind) (float64, bool) {
	switch kind {
	case KindNumber:
		return v.(float64), true
	case KindString:
		s := strings.TrimSpace(v.(string))
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), false
		}
		return n, true
	default:
		return math.NaN(), false
	}
}
