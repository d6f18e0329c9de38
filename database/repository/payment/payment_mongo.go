package paymentRepo

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

const feesDocumentID = "consultationFees"

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll     *mongo.Collection
	settings *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{
		coll:     database.Collection("payments"),
		settings: database.Collection("settings"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{Keys: bson.D{{Key: "payment_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payment record.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update modifies an existing payment record.
func (r *MongoPaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": payment.ID}, bson.M{"$set": payment})
	if err != nil {
		return fmt.Errorf("failed to update payment with id %s: %w", payment.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment with id %s not found", payment.ID)
	}
	return nil
}

// Delete removes a payment record by its ID.
func (r *MongoPaymentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete payment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("payment with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a payment by its unique ID.
func (r *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &payment, nil
}

// GetAll retrieves all payments, newest payment date first.
func (r *MongoPaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	return r.find(ctx, bson.M{})
}

// GetByPatient retrieves payments for a patient, newest payment date first.
func (r *MongoPaymentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	return r.find(ctx, bson.M{"patient_id": patientID})
}

// GetFees loads the consultation fee settings document. A missing document
// returns nil so the caller can apply defaults.
func (r *MongoPaymentRepo) GetFees(ctx context.Context) (*models.ConsultationFees, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var fees models.ConsultationFees
	err := r.settings.FindOne(ctx, bson.M{"_id": feesDocumentID}).Decode(&fees)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch consultation fees: %w", err)
	}
	return &fees, nil
}

// SaveFees stores the consultation fee settings document.
func (r *MongoPaymentRepo) SaveFees(ctx context.Context, fees *models.ConsultationFees) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.settings.ReplaceOne(ctx, bson.M{"_id": feesDocumentID}, fees, opts); err != nil {
		return fmt.Errorf("failed to save consultation fees: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "payment_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
