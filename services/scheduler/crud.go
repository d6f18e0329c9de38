package scheduler

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mentepro/models"
)

// Create validates the input, assigns a fresh ID and timestamps and appends
// the appointment to the collection. Unlike the read paths, creation always
// runs validation; callers do not need to call Validate first.
func (s *DefaultSchedulingService) Create(ctx context.Context, input models.AppointmentInput) *models.AppointmentResult {
	now := s.now().UTC()

	s.mu.Lock()
	if v := s.validateLocked(input); !v.IsValid {
		s.mu.Unlock()
		return &models.AppointmentResult{Success: false, Error: ValidationError{Errors: v.Errors}.Error()}
	}

	status := input.Status
	if status == "" {
		status = models.StatusScheduled
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentPending
	}

	appt := models.Appointment{
		ID:            uuid.New().String(),
		PatientID:     input.PatientID,
		PatientName:   input.PatientName,
		Date:          input.Date,
		Time:          input.Time,
		Duration:      input.Duration,
		Type:          input.Type,
		Status:        status,
		PaymentStatus: paymentStatus,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()

	persisted := s.persistCreate(ctx, &appt)
	s.saveSnapshot(ctx)
	s.scheduleReminder(ctx, appt)

	return &models.AppointmentResult{Success: true, Persisted: persisted, Appointment: &appt}
}

// Update merges the patch over an existing appointment and refreshes its
// UpdatedAt timestamp.
func (s *DefaultSchedulingService) Update(ctx context.Context, id string, patch models.AppointmentUpdate) *models.AppointmentResult {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return &models.AppointmentResult{Success: false, Error: NotFoundError{ID: id}.Error()}
	}

	appt := s.appointments[idx]
	applyPatch(&appt, patch)
	appt.UpdatedAt = s.now().UTC()
	s.appointments[idx] = appt
	s.mu.Unlock()

	persisted := s.persistUpdate(ctx, &appt)
	s.saveSnapshot(ctx)
	s.scheduleReminder(ctx, appt)

	return &models.AppointmentResult{Success: true, Persisted: persisted, Appointment: &appt}
}

// Delete removes an appointment from the collection.
func (s *DefaultSchedulingService) Delete(ctx context.Context, id string) *models.AppointmentResult {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return &models.AppointmentResult{Success: false, Error: NotFoundError{ID: id}.Error()}
	}
	s.appointments = append(s.appointments[:idx], s.appointments[idx+1:]...)
	s.mu.Unlock()

	persisted := true
	if s.Repo != nil {
		if err := s.Repo.Delete(ctx, id); err != nil {
			s.Logger.Error("scheduler: failed to delete appointment from store",
				zap.String("appointmentId", id), zap.Error(err))
			persisted = false
		}
	}
	s.saveSnapshot(ctx)

	return &models.AppointmentResult{Success: true, Persisted: persisted}
}

// GetByID returns a copy of the appointment with the given ID, or nil.
func (s *DefaultSchedulingService) GetByID(id string) *models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil
	}
	appt := s.appointments[idx]
	return &appt
}

func (s *DefaultSchedulingService) persistCreate(ctx context.Context, appt *models.Appointment) bool {
	if s.Repo == nil {
		return true
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		s.Logger.Error("scheduler: failed to persist new appointment",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultSchedulingService) persistUpdate(ctx context.Context, appt *models.Appointment) bool {
	if s.Repo == nil {
		return true
	}
	if err := s.Repo.Update(ctx, appt); err != nil {
		s.Logger.Error("scheduler: failed to persist appointment update",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return false
	}
	return true
}

func applyPatch(appt *models.Appointment, patch models.AppointmentUpdate) {
	if patch.PatientID != nil {
		appt.PatientID = *patch.PatientID
	}
	if patch.PatientName != nil {
		appt.PatientName = *patch.PatientName
	}
	if patch.Date != nil {
		appt.Date = *patch.Date
	}
	if patch.Time != nil {
		appt.Time = *patch.Time
	}
	if patch.Duration != nil {
		appt.Duration = *patch.Duration
	}
	if patch.Type != nil {
		appt.Type = *patch.Type
	}
	if patch.Status != nil {
		appt.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		appt.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentAmount != nil {
		appt.PaymentAmount = *patch.PaymentAmount
	}
	if patch.PaymentMethod != nil {
		appt.PaymentMethod = *patch.PaymentMethod
	}
	if patch.PaymentDate != nil {
		appt.PaymentDate = *patch.PaymentDate
	}
	if patch.Notes != nil {
		appt.Notes = *patch.Notes
	}
}
