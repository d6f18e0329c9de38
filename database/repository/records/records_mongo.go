package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentepro/database"
	"mentepro/models"
)

// MongoRecordRepo implements RecordRepository using MongoDB.
type MongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo creates a new instance of RecordRepository using MongoDB.
func NewMongoRecordRepo() RecordRepository {
	coll := database.Collection("medical_records")
	repo := &MongoRecordRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoRecordRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{Keys: bson.D{{Key: "session_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new session record.
func (r *MongoRecordRepo) Create(ctx context.Context, record *models.SessionRecord) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create session record: %w", err)
	}
	return nil
}

// Update modifies an existing session record.
func (r *MongoRecordRepo) Update(ctx context.Context, record *models.SessionRecord) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": record.ID}, bson.M{"$set": record})
	if err != nil {
		return fmt.Errorf("failed to update session record with id %s: %w", record.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("session record with id %s not found", record.ID)
	}
	return nil
}

// Delete removes a session record by its ID.
func (r *MongoRecordRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session record with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("session record with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a session record by its unique ID.
func (r *MongoRecordRepo) GetByID(ctx context.Context, id string) (*models.SessionRecord, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var record models.SessionRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session record with id %s: %w", id, err)
	}
	return &record, nil
}

// GetAll retrieves all session records, newest session first.
func (r *MongoRecordRepo) GetAll(ctx context.Context) ([]models.SessionRecord, error) {
	return r.find(ctx, bson.M{})
}

// GetByPatient retrieves a patient's session records, newest session first.
func (r *MongoRecordRepo) GetByPatient(ctx context.Context, patientID string) ([]models.SessionRecord, error) {
	return r.find(ctx, bson.M{"patient_id": patientID})
}

func (r *MongoRecordRepo) find(ctx context.Context, filter bson.M) ([]models.SessionRecord, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "session_date", Value: -1},
		{Key: "session_time", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve session records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.SessionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode session records: %w", err)
	}
	return records, nil
}
