package payment

import (
	"context"

	"mentepro/models"
)

// PaymentService manages payment records, consultation fees and the
// financial aggregates shown on the clinic dashboard. Mutations keep the
// linked appointment's payment fields in sync.
type PaymentService interface {
	// Register stores a new payment and stamps the payment details onto
	// the linked appointment.
	Register(ctx context.Context, input models.PaymentInput) (*models.Payment, error)
	// Update modifies a payment and re-stamps the linked appointment.
	Update(ctx context.Context, id string, input models.PaymentInput) (*models.Payment, error)
	// Delete removes a payment and resets the linked appointment's
	// payment status to pending.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves a payment, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	// List retrieves all payments, newest payment date first.
	List(ctx context.Context) ([]models.Payment, error)
	// ListByPatient retrieves a patient's payments, newest first.
	ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error)

	// Fees returns the configured consultation fees, with defaults when
	// none were saved yet.
	Fees(ctx context.Context) (*models.ConsultationFees, error)
	// SaveFees stores the consultation fee settings.
	SaveFees(ctx context.Context, fees models.ConsultationFees) (*models.ConsultationFees, error)

	// Summary aggregates payments for the current month.
	Summary(ctx context.Context) (*models.FinancialSummary, error)
	// Report aggregates payments whose payment date falls in the
	// inclusive [startDate, endDate] range.
	Report(ctx context.Context, startDate, endDate string) (*models.FinancialReport, error)
}
