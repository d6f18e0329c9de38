package scheduler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mentepro/models"
)

// csvHeader matches the legacy export layout consumed by the clinic's
// spreadsheet templates.
var csvHeader = []string{
	"ID", "Paciente", "Data", "Horário", "Tipo", "Duração",
	"Status", "Pagamento", "Observações", "Criado em",
}

// Export serializes the full collection. "json" produces a pretty-printed
// array; "csv" produces a header row followed by one row per appointment
// with every field double-quoted.
func (s *DefaultSchedulingService) Export(format string) (string, error) {
	s.mu.RLock()
	appts := s.snapshotLocked()
	s.mu.RUnlock()

	switch format {
	case "json", "":
		b, err := json.MarshalIndent(appts, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize appointments: %w", err)
		}
		return string(b), nil
	case "csv":
		return toCSV(appts), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

// toCSV quotes every field unconditionally, as the legacy exporter did.
// encoding/csv only quotes when required, so the rows are built by hand.
func toCSV(appts []models.Appointment) string {
	rows := make([][]string, 0, len(appts)+1)
	rows = append(rows, csvHeader)

	for _, appt := range appts {
		rows = append(rows, []string{
			appt.ID,
			appt.PatientName,
			appt.Date,
			appt.Time,
			appt.Type,
			strconv.Itoa(appt.Duration),
			appt.Status,
			appt.PaymentStatus,
			appt.Notes,
			appt.CreatedAt.Format(time.RFC3339),
		})
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		quoted := make([]string, len(row))
		for j, field := range row {
			quoted[j] = `"` + field + `"`
		}
		lines[i] = strings.Join(quoted, ",")
	}
	return strings.Join(lines, "\n")
}
