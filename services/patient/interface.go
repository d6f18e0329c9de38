package patient

import (
	"context"

	"mentepro/models"
)

// PatientService manages clinic patient records.
type PatientService interface {
	// Create validates and stores a new patient, defaulting status to active.
	Create(ctx context.Context, input models.Patient) (*models.Patient, error)
	// Update validates and merges changes into an existing patient.
	Update(ctx context.Context, id string, input models.Patient) (*models.Patient, error)
	// Delete removes a patient record.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves a patient, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	// List retrieves all patients.
	List(ctx context.Context) ([]models.Patient, error)
	// Search finds patients by name, email or phone substring.
	Search(ctx context.Context, query string) ([]models.Patient, error)
}
