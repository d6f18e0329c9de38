package scheduler

import (
	"time"

	"mentepro/models"
)

// Validate checks every appointment constraint and accumulates all violated
// ones instead of stopping at the first. The conflict check only runs when
// date, time and duration are all present.
func (s *DefaultSchedulingService) Validate(input models.AppointmentInput) models.ValidationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validateLocked(input)
}

func (s *DefaultSchedulingService) validateLocked(input models.AppointmentInput) models.ValidationResult {
	var errs []string

	if input.PatientID == "" {
		errs = append(errs, "Paciente é obrigatório")
	}

	if input.Date == "" {
		errs = append(errs, "Data é obrigatória")
	} else if date, err := time.ParseInLocation(dateLayout, input.Date, time.Local); err != nil {
		errs = append(errs, "Data inválida")
	} else {
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if date.Before(today) {
			errs = append(errs, "Data não pode ser no passado")
		}
	}

	if input.Time == "" {
		errs = append(errs, "Horário é obrigatório")
	}

	if input.Type == "" {
		errs = append(errs, "Tipo de consulta é obrigatório")
	}

	if input.Duration != 0 && (input.Duration < 15 || input.Duration > 180) {
		errs = append(errs, "Duração deve estar entre 15 e 180 minutos")
	}

	if input.Date != "" && input.Time != "" && input.Duration != 0 {
		if s.hasConflictLocked(input.Date, input.Time, input.Duration, input.ID) {
			errs = append(errs, "Horário conflita com outro agendamento")
		}
	}

	return models.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
