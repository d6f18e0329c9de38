package records

import (
	"context"

	"mentepro/models"
)

// RecordService manages clinical session notes and the per-patient progress
// metrics derived from them.
type RecordService interface {
	// Save validates and stores a new session record.
	Save(ctx context.Context, input models.SessionRecord) (*models.SessionRecord, error)
	// Update modifies an existing session record.
	Update(ctx context.Context, id string, input models.SessionRecord) (*models.SessionRecord, error)
	// Delete removes a session record.
	Delete(ctx context.Context, id string) error
	// GetByID retrieves a session record, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.SessionRecord, error)
	// Timeline retrieves a patient's sessions, newest first.
	Timeline(ctx context.Context, patientID string) ([]models.SessionRecord, error)
	// ProgressSeries returns the (date, level) points of one metric for a
	// patient, oldest session first.
	ProgressSeries(ctx context.Context, patientID, metric string) ([]models.ProgressPoint, error)
}
