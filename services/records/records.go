package records

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	recordsRepo "mentepro/database/repository/records"
	"mentepro/models"
)

// DefaultRecordService is the production implementation backed by the
// session record repository.
type DefaultRecordService struct {
	Repo   recordsRepo.RecordRepository
	Logger *zap.Logger
}

// Save validates and stores a new session record. Session notes are the only
// mandatory free-text field.
func (s *DefaultRecordService) Save(ctx context.Context, input models.SessionRecord) (*models.SessionRecord, error) {
	if strings.TrimSpace(input.Notes) == "" {
		return nil, errors.New("As anotações da sessão são obrigatórias.")
	}

	now := time.Now().UTC()
	input.ID = uuid.New().String()
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := s.Repo.Create(ctx, &input); err != nil {
		return nil, fmt.Errorf("failed to save session record: %w", err)
	}
	s.Logger.Info("session record saved",
		zap.String("recordId", input.ID),
		zap.String("patientId", input.PatientID))
	return &input, nil
}

// Update modifies an existing session record.
func (s *DefaultRecordService) Update(ctx context.Context, id string, input models.SessionRecord) (*models.SessionRecord, error) {
	if strings.TrimSpace(input.Notes) == "" {
		return nil, errors.New("As anotações da sessão são obrigatórias.")
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session record: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("session record with id %s not found", id)
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, &input); err != nil {
		return nil, fmt.Errorf("failed to update session record: %w", err)
	}
	return &input, nil
}

// Delete removes a session record.
func (s *DefaultRecordService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session record with id %s: %w", id, err)
	}
	return nil
}

// GetByID retrieves a session record, or nil if absent.
func (s *DefaultRecordService) GetByID(ctx context.Context, id string) (*models.SessionRecord, error) {
	return s.Repo.GetByID(ctx, id)
}

// Timeline retrieves a patient's sessions, newest first.
func (s *DefaultRecordService) Timeline(ctx context.Context, patientID string) ([]models.SessionRecord, error) {
	return s.Repo.GetByPatient(ctx, patientID)
}

// ProgressSeries returns the (date, level) points of one metric for a
// patient, oldest session first, for charting progress over treatment.
func (s *DefaultRecordService) ProgressSeries(ctx context.Context, patientID, metric string) ([]models.ProgressPoint, error) {
	sessions, err := s.Repo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	points := make([]models.ProgressPoint, 0, len(sessions))
	for _, session := range sessions {
		level, ok := metricLevel(session, metric)
		if !ok {
			return nil, fmt.Errorf("unknown progress metric %q", metric)
		}
		points = append(points, models.ProgressPoint{Date: session.SessionDate, Level: level})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}

func metricLevel(session models.SessionRecord, metric string) (int, bool) {
	switch metric {
	case models.MetricMood:
		return session.MoodLevel, true
	case models.MetricAnxiety:
		return session.AnxietyLevel, true
	case models.MetricProgress:
		return session.ProgressLevel, true
	case models.MetricMedication:
		return session.MedicationAdherence, true
	default:
		return 0, false
	}
}
