package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"mentepro/models"
)

const TypeAppointmentReminder = "reminder:appointment"

// NewReminderTask builds an asynq task carrying the reminder payload,
// scheduled to run at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on the shared Redis
// queue, firing lead time before the session starts.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// Schedule enqueues a reminder for the appointment. Reminders whose fire
// time already passed are enqueued for immediate processing.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, appt models.Appointment) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment start: %w", err)
	}

	fireAt := start.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		PatientName:   appt.PatientName,
		Date:          appt.Date,
		Time:          appt.Time,
		FireDate:      fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
