package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-workoutcoach/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrMalformedID means the id cannot address any record, as opposed to
	// addressing one that does not exist.
	ErrMalformedID = errors.New("invalid workout id")
)

// WorkoutStore is the record store behind the workout endpoints.
// FindMany always returns workouts by date, most recent first.
type WorkoutStore interface {
	Insert(ctx context.Context, workout models.Workout) (*models.Workout, error)
	FindMany(ctx context.Context, filter models.WorkoutFilter, limit int64) ([]models.Workout, error)
	UpdateByID(ctx context.Context, id string, patch models.WorkoutPatch) (*models.Workout, error)
	DeleteByID(ctx context.Context, id string) (*models.Workout, error)
}

type MongoWorkoutStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoWorkoutStore(collection *mongo.Collection) *MongoWorkoutStore {
	return &MongoWorkoutStore{
		collection: collection,
		now:        utcNow,
	}
}

func utcNow() time.Time {
	// mongo keeps millisecond precision
	return time.Now().UTC().Truncate(time.Millisecond)
}

// EnsureIndexes creates the indexes the list and feedback queries rely on.
func (s *MongoWorkoutStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "date", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create workout indexes: %w", err)
	}
	return nil
}

func (s *MongoWorkoutStore) Insert(ctx context.Context, workout models.Workout) (*models.Workout, error) {
	now := s.now()
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Tags == nil {
		workout.Tags = []string{}
	}

	if _, err := s.collection.InsertOne(ctx, workout); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	return &workout, nil
}

func (s *MongoWorkoutStore) FindMany(ctx context.Context, filter models.WorkoutFilter, limit int64) ([]models.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, filterToBSON(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find workouts: %w", err)
	}
	defer cursor.Close(ctx)

	workouts := []models.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	return workouts, nil
}

func (s *MongoWorkoutStore) UpdateByID(ctx context.Context, id string, patch models.WorkoutPatch) (*models.Workout, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMalformedID
	}

	update := bson.D{{Key: "$set", Value: patchToBSON(patch, s.now())}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var workout models.Workout
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&workout)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update workout %s: %w", id, err)
	}
	return &workout, nil
}

func (s *MongoWorkoutStore) DeleteByID(ctx context.Context, id string) (*models.Workout, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMalformedID
	}

	var workout models.Workout
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&workout)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete workout %s: %w", id, err)
	}
	return &workout, nil
}

// filterToBSON relies on dates being zero-padded strings, so $gte/$lte
// on the raw string is a chronological range.
func filterToBSON(filter models.WorkoutFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	dateRange := bson.M{}
	if filter.From != "" {
		dateRange["$gte"] = filter.From
	}
	if filter.To != "" {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}

func patchToBSON(patch models.WorkoutPatch, updatedAt time.Time) bson.D {
	var set bson.D
	if patch.Type.Set {
		set = append(set, bson.E{Key: "type", Value: patch.Type.Value})
	}
	if patch.Date.Set {
		set = append(set, bson.E{Key: "date", Value: patch.Date.Value})
	}
	if patch.DurationMinutes.Set {
		set = append(set, bson.E{Key: "durationMinutes", Value: patch.DurationMinutes.Value})
	}
	if patch.DistanceKm.Set {
		set = append(set, bson.E{Key: "distanceKm", Value: patch.DistanceKm.Value})
	}
	if patch.Intensity.Set {
		set = append(set, bson.E{Key: "intensity", Value: patch.Intensity.Value})
	}
	if patch.Notes.Set {
		set = append(set, bson.E{Key: "notes", Value: patch.Notes.Value})
	}
	if patch.Tags.Set {
		set = append(set, bson.E{Key: "tags", Value: patch.Tags.Value})
	}

	set = append(set, bson.E{Key: "updatedAt", Value: updatedAt})
	return set
}
