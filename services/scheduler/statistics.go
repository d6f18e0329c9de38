package scheduler

import "mentepro/models"

// Statistics aggregates the collection as of call time. Nothing is cached:
// every call walks the current collection.
//
// "Week" spans from the most recent Sunday through the following Saturday,
// inclusive. Unrecognized status values count toward the total but not
// toward any status bucket.
func (s *DefaultSchedulingService) Statistics() models.AppointmentStatistics {
	now := s.now()
	today := now.Format(dateLayout)
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	s.mu.RLock()
	defer s.mu.RUnlock()

	statusCounts := make(map[string]int, len(models.AppointmentStatuses))
	for _, status := range models.AppointmentStatuses {
		statusCounts[status] = 0
	}
	for _, appt := range s.appointments {
		if _, ok := statusCounts[appt.Status]; ok {
			statusCounts[appt.Status]++
		}
	}

	return models.AppointmentStatistics{
		Today:        len(s.byDateLocked(today)),
		Week:         len(s.byPeriodLocked(weekStart.Format(dateLayout), weekEnd.Format(dateLayout))),
		Pending:      statusCounts[models.StatusScheduled] + statusCounts[models.StatusConfirmed],
		Completed:    statusCounts[models.StatusCompleted],
		Cancelled:    statusCounts[models.StatusCancelled],
		NoShow:       statusCounts[models.StatusNoShow],
		Total:        len(s.appointments),
		StatusCounts: statusCounts,
	}
}
