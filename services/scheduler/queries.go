package scheduler

import (
	"sort"
	"time"

	"mentepro/models"
)

// List returns a copy of the whole collection.
func (s *DefaultSchedulingService) List() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// GetByDate returns appointments for an exact calendar date, unordered.
func (s *DefaultSchedulingService) GetByDate(date string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byDateLocked(date)
}

func (s *DefaultSchedulingService) byDateLocked(date string) []models.Appointment {
	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.Date == date {
			out = append(out, appt)
		}
	}
	return out
}

// GetByPeriod returns appointments whose date falls inside the inclusive
// [startDate, endDate] range. Appointments with unparseable dates are
// skipped, as are unparseable bounds.
func (s *DefaultSchedulingService) GetByPeriod(startDate, endDate string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byPeriodLocked(startDate, endDate)
}

func (s *DefaultSchedulingService) byPeriodLocked(startDate, endDate string) []models.Appointment {
	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return nil
	}

	var out []models.Appointment
	for _, appt := range s.appointments {
		date, err := time.ParseInLocation(dateLayout, appt.Date, time.Local)
		if err != nil {
			continue
		}
		if !date.Before(start) && !date.After(end) {
			out = append(out, appt)
		}
	}
	return out
}

// GetByPatient returns appointments for a patient.
func (s *DefaultSchedulingService) GetByPatient(patientID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.PatientID == patientID {
			out = append(out, appt)
		}
	}
	return out
}

// GetByStatus returns appointments with the given status.
func (s *DefaultSchedulingService) GetByStatus(status string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.Status == status {
			out = append(out, appt)
		}
	}
	return out
}

// Upcoming returns appointments strictly in the future (by combined
// date+time) that are still scheduled or confirmed, soonest first, truncated
// to limit. A non-positive limit defaults to 5.
func (s *DefaultSchedulingService) Upcoming(limit int) []models.Appointment {
	if limit <= 0 {
		limit = 5
	}
	now := s.now()

	s.mu.RLock()
	type upcoming struct {
		appt  models.Appointment
		start time.Time
	}
	var future []upcoming
	for _, appt := range s.appointments {
		if appt.Status != models.StatusScheduled && appt.Status != models.StatusConfirmed {
			continue
		}
		start, err := combineDateTime(appt.Date, appt.Time)
		if err != nil || !start.After(now) {
			continue
		}
		future = append(future, upcoming{appt: appt, start: start})
	}
	s.mu.RUnlock()

	sort.Slice(future, func(i, j int) bool {
		return future[i].start.Before(future[j].start)
	})
	if len(future) > limit {
		future = future[:limit]
	}

	out := make([]models.Appointment, len(future))
	for i, f := range future {
		out[i] = f.appt
	}
	return out
}

// Today returns today's appointments ascending by time-of-day string.
func (s *DefaultSchedulingService) Today() []models.Appointment {
	today := s.now().Format(dateLayout)

	s.mu.RLock()
	out := s.byDateLocked(today)
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
