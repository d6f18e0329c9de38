package recordsRepo

import (
	"context"

	"mentepro/models"
)

// RecordRepository defines methods for session record data access.
type RecordRepository interface {
	// Create inserts a new session record.
	Create(ctx context.Context, record *models.SessionRecord) error
	// Update modifies an existing session record.
	Update(ctx context.Context, record *models.SessionRecord) error
	// Delete removes a session record by its ID.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves a session record by its unique ID.
	GetByID(ctx context.Context, id string) (*models.SessionRecord, error)
	// GetAll retrieves all session records, newest session first.
	GetAll(ctx context.Context) ([]models.SessionRecord, error)
	// GetByPatient retrieves a patient's session records, newest session first.
	GetByPatient(ctx context.Context, patientID string) ([]models.SessionRecord, error)
}
