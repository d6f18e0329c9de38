package patientRepo

import (
	"context"

	"mentepro/models"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	// Create inserts a new patient record.
	Create(ctx context.Context, patient *models.Patient) error
	// Update modifies an existing patient record.
	Update(ctx context.Context, patient *models.Patient) error
	// Delete removes a patient record by its ID.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves a patient by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	// GetAll retrieves all patients.
	GetAll(ctx context.Context) ([]models.Patient, error)
	// Search retrieves patients matching the query on name, email or phone.
	Search(ctx context.Context, query string) ([]models.Patient, error)
}
