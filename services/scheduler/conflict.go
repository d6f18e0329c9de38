package scheduler

import "time"

// HasConflict reports whether the candidate interval [start, start+duration)
// built from date and startTime overlaps an existing appointment on the same
// date. Intervals are half-open: an appointment that begins exactly when
// another ends does not conflict. excludeID skips one appointment, so a
// record can be re-validated against its own slot on update.
//
// Cancelled and no-show appointments still occupy their slot; see DESIGN.md
// for the rationale behind keeping them in the check.
func (s *DefaultSchedulingService) HasConflict(date, startTime string, duration int, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasConflictLocked(date, startTime, duration, excludeID)
}

func (s *DefaultSchedulingService) hasConflictLocked(date, startTime string, duration int, excludeID string) bool {
	newStart, err := combineDateTime(date, startTime)
	if err != nil {
		return false
	}
	newEnd := newStart.Add(time.Duration(duration) * time.Minute)

	for i := range s.appointments {
		appt := &s.appointments[i]
		if excludeID != "" && appt.ID == excludeID {
			continue
		}
		if appt.Date != date {
			continue
		}

		existingStart, err := combineDateTime(appt.Date, appt.Time)
		if err != nil {
			continue
		}
		existingEnd := existingStart.Add(time.Duration(appt.Duration) * time.Minute)

		if newStart.Before(existingEnd) && newEnd.After(existingStart) {
			return true
		}
	}
	return false
}
