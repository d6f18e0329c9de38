package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mentepro/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment document.
	Create(ctx context.Context, appt *models.Appointment) error
	// Update replaces the stored document for the appointment's ID.
	Update(ctx context.Context, appt *models.Appointment) error
	// UpdateFields patches individual fields of an appointment document.
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	// Delete removes an appointment document by its ID.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll retrieves every appointment document.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByDate retrieves appointments for an exact calendar date.
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// GetByPatient retrieves appointments for a patient.
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// GetByStatus retrieves appointments with the given status.
	GetByStatus(ctx context.Context, status string) ([]models.Appointment, error)
}
