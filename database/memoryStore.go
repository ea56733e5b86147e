package database

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"golang-workoutcoach/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryWorkoutStore keeps workouts in process memory. It mirrors the
// MongoDB store, ObjectID ids included, and is used for local runs
// without a database and in tests.
type MemoryWorkoutStore struct {
	mu       sync.Mutex
	workouts []models.Workout
	now      func() time.Time
}

func NewMemoryWorkoutStore() *MemoryWorkoutStore {
	return &MemoryWorkoutStore{now: utcNow}
}

func (s *MemoryWorkoutStore) Insert(_ context.Context, workout models.Workout) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	stored := *copyWorkout(workout)
	s.workouts = append(s.workouts, stored)
	return copyWorkout(stored), nil
}

func (s *MemoryWorkoutStore) FindMany(_ context.Context, filter models.WorkoutFilter, limit int64) ([]models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := []models.Workout{}
	for _, w := range s.workouts {
		if filter.Matches(w) {
			found = append(found, *copyWorkout(w))
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Date > found[j].Date
	})

	if limit > 0 && int64(len(found)) > limit {
		found = found[:limit]
	}
	return found, nil
}

func (s *MemoryWorkoutStore) UpdateByID(_ context.Context, id string, patch models.WorkoutPatch) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.indexOf(id)
	if err != nil {
		return nil, err
	}

	updated := s.workouts[idx]
	patch.Apply(&updated)
	updated.UpdatedAt = s.now()
	s.workouts[idx] = *copyWorkout(updated)
	return copyWorkout(updated), nil
}

func (s *MemoryWorkoutStore) DeleteByID(_ context.Context, id string) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.indexOf(id)
	if err != nil {
		return nil, err
	}

	deleted := s.workouts[idx]
	s.workouts = slices.Delete(s.workouts, idx, idx+1)
	return &deleted, nil
}

func (s *MemoryWorkoutStore) indexOf(id string) (int, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, ErrMalformedID
	}

	for i, w := range s.workouts {
		if w.ID == objID {
			return i, nil
		}
	}
	return -1, ErrWorkoutNotFound
}

func copyWorkout(w models.Workout) *models.Workout {
	w.Tags = cloneTags(w.Tags)
	if w.DistanceKm != nil {
		d := *w.DistanceKm
		w.DistanceKm = &d
	}
	if w.Intensity != nil {
		i := *w.Intensity
		w.Intensity = &i
	}
	return &w
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
