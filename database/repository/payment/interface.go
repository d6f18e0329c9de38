package paymentRepo

import (
	"context"

	"mentepro/models"
)

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(ctx context.Context, payment *models.Payment) error
	// Update modifies an existing payment record.
	Update(ctx context.Context, payment *models.Payment) error
	// Delete removes a payment record by its ID.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves a payment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	// GetAll retrieves all payments, newest payment date first.
	GetAll(ctx context.Context) ([]models.Payment, error)
	// GetByPatient retrieves payments for a patient, newest payment date first.
	GetByPatient(ctx context.Context, patientID string) ([]models.Payment, error)
	// GetFees loads the consultation fee settings document.
	GetFees(ctx context.Context) (*models.ConsultationFees, error)
	// SaveFees stores the consultation fee settings document.
	SaveFees(ctx context.Context, fees *models.ConsultationFees) error
}
