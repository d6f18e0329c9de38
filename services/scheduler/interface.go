package scheduler

import (
	"context"

	"mentepro/models"
)

// SchedulingService owns the appointment collection: CRUD, conflict
// detection, validation, aggregate statistics and export.
type SchedulingService interface {
	// Reload replaces the in-memory collection from the backing store,
	// falling back to the local snapshot when the store is unreachable.
	Reload(ctx context.Context) error

	// Create validates the input, assigns a fresh ID and timestamps and
	// appends the appointment to the collection.
	Create(ctx context.Context, input models.AppointmentInput) *models.AppointmentResult
	// Update merges the patch over an existing appointment.
	Update(ctx context.Context, id string, patch models.AppointmentUpdate) *models.AppointmentResult
	// Delete removes an appointment from the collection.
	Delete(ctx context.Context, id string) *models.AppointmentResult

	// GetByID returns the appointment with the given ID, or nil.
	GetByID(id string) *models.Appointment
	// List returns a copy of the whole collection.
	List() []models.Appointment
	// GetByDate returns appointments for an exact calendar date, unordered.
	GetByDate(date string) []models.Appointment
	// GetByPeriod returns appointments whose date falls inside the inclusive range.
	GetByPeriod(startDate, endDate string) []models.Appointment
	// GetByPatient returns appointments for a patient.
	GetByPatient(patientID string) []models.Appointment
	// GetByStatus returns appointments with the given status.
	GetByStatus(status string) []models.Appointment

	// HasConflict reports whether the candidate interval overlaps an
	// existing appointment on the same date.
	HasConflict(date, startTime string, duration int, excludeID string) bool
	// Validate accumulates every violated constraint for the input.
	Validate(input models.AppointmentInput) models.ValidationResult

	// Statistics aggregates the collection as of call time.
	Statistics() models.AppointmentStatistics
	// Upcoming returns future scheduled or confirmed appointments,
	// soonest first, truncated to limit.
	Upcoming(limit int) []models.Appointment
	// Today returns today's appointments ascending by time.
	Today() []models.Appointment

	// Export serializes the collection as "json" or "csv".
	Export(format string) (string, error)
}

// SnapshotStore persists a point-in-time copy of the appointment collection
// under a fixed namespace key, consulted when the document store is
// unreachable.
type SnapshotStore interface {
	Load(ctx context.Context) ([]models.Appointment, error)
	Save(ctx context.Context, appts []models.Appointment) error
}

// ReminderScheduler enqueues a reminder to fire before an appointment starts.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt models.Appointment) error
}
