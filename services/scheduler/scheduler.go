package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	appointmentRepo "mentepro/database/repository/appointment"
	"mentepro/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DefaultSchedulingService is the production implementation. It keeps the
// whole collection in memory and synchronizes it with the backing store:
// mutations apply locally first, then persist; a failed persist is reported
// in the result (Persisted=false) and the snapshot keeps the local state
// until the next Reload.
type DefaultSchedulingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Snapshot  SnapshotStore
	Reminders ReminderScheduler
	Logger    *zap.Logger

	mu           sync.RWMutex
	appointments []models.Appointment
	now          func() time.Time
}

// NewSchedulingService assembles a scheduling service. Repo may be nil, in
// which case the service runs purely against the local snapshot.
func NewSchedulingService(repo appointmentRepo.AppointmentRepository, snapshot SnapshotStore, logger *zap.Logger) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo:     repo,
		Snapshot: snapshot,
		Logger:   logger,
		now:      time.Now,
	}
}

// Reload replaces the in-memory collection from the backing store, falling
// back to the local snapshot when the store is unreachable.
func (s *DefaultSchedulingService) Reload(ctx context.Context) error {
	var appts []models.Appointment
	var err error

	if s.Repo != nil {
		appts, err = s.Repo.GetAll(ctx)
		if err != nil {
			s.Logger.Warn("scheduler: store unreachable, loading snapshot", zap.Error(err))
		}
	}
	if s.Repo == nil || err != nil {
		if s.Snapshot == nil {
			return err
		}
		appts, err = s.Snapshot.Load(ctx)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.appointments = appts
	s.mu.Unlock()

	s.Logger.Info("scheduler: appointments loaded", zap.Int("count", len(appts)))
	return nil
}

// combineDateTime parses a calendar date plus a time of day into a local
// time.Time.
func combineDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, time.Local)
}

// indexOfLocked returns the position of the appointment with the given ID,
// or -1. Callers must hold the mutex.
func (s *DefaultSchedulingService) indexOfLocked(id string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshotLocked returns a copy of the collection. Callers must hold at
// least a read lock.
func (s *DefaultSchedulingService) snapshotLocked() []models.Appointment {
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// saveSnapshot writes the current collection to the local snapshot store.
// Snapshot failures are logged, never surfaced: the snapshot is best-effort.
func (s *DefaultSchedulingService) saveSnapshot(ctx context.Context) {
	if s.Snapshot == nil {
		return
	}
	s.mu.RLock()
	appts := s.snapshotLocked()
	s.mu.RUnlock()

	if err := s.Snapshot.Save(ctx, appts); err != nil {
		s.Logger.Error("scheduler: failed to save local snapshot", zap.Error(err))
	}
}

// scheduleReminder enqueues a reminder for future scheduled or confirmed
// appointments. Failures are logged only.
func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, appt models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if appt.Status != models.StatusScheduled && appt.Status != models.StatusConfirmed {
		return
	}
	start, err := combineDateTime(appt.Date, appt.Time)
	if err != nil || !start.After(s.now()) {
		return
	}
	if err := s.Reminders.Schedule(ctx, appt); err != nil {
		s.Logger.Error("scheduler: failed to schedule reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
