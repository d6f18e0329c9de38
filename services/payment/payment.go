package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	patientRepo "mentepro/database/repository/patient"
	paymentRepo "mentepro/database/repository/payment"
	"mentepro/models"
	"mentepro/services/scheduler"
)

// Default consultation fees, applied until the clinic saves its own.
var defaultFees = models.ConsultationFees{
	Standard: 150,
	Return:   120,
	Group:    80,
	Online:   130,
}

// DefaultPaymentService is the production implementation. It denormalizes
// patient and appointment details onto each payment and keeps the linked
// appointment's payment fields in sync through the scheduler.
type DefaultPaymentService struct {
	Repo      paymentRepo.PaymentRepository
	Patients  patientRepo.PatientRepository
	Scheduler scheduler.SchedulingService
	Logger    *zap.Logger
}

// Register stores a new payment and stamps the payment details onto the
// linked appointment.
func (s *DefaultPaymentService) Register(ctx context.Context, input models.PaymentInput) (*models.Payment, error) {
	patient, err := s.Patients.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	if patient == nil {
		return nil, errors.New("paciente não encontrado")
	}

	appt := s.Scheduler.GetByID(input.AppointmentID)
	if appt == nil {
		return nil, scheduler.NotFoundError{ID: input.AppointmentID}
	}

	status := input.Status
	if status == "" {
		status = models.PaymentPending
	}
	apptType := appt.Type
	if apptType == "" {
		apptType = "consulta"
	}

	now := time.Now().UTC()
	payment := models.Payment{
		ID:              uuid.New().String(),
		PatientID:       input.PatientID,
		PatientName:     patient.Name,
		AppointmentID:   appt.ID,
		AppointmentDate: appt.Date,
		AppointmentType: apptType,
		Amount:          input.Amount,
		Method:          input.Method,
		PaymentDate:     input.PaymentDate,
		Status:          status,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, &payment); err != nil {
		return nil, fmt.Errorf("failed to register payment: %w", err)
	}
	if err := s.stampAppointment(ctx, payment); err != nil {
		return nil, err
	}

	s.Logger.Info("payment registered",
		zap.String("paymentId", payment.ID),
		zap.String("appointmentId", payment.AppointmentID))
	return &payment, nil
}

// Update modifies a payment and re-stamps the linked appointment.
func (s *DefaultPaymentService) Update(ctx context.Context, id string, input models.PaymentInput) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment with id %s not found", id)
	}

	payment.Amount = input.Amount
	payment.Method = input.Method
	payment.PaymentDate = input.PaymentDate
	payment.Status = input.Status
	payment.Notes = input.Notes
	payment.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	if err := s.stampAppointment(ctx, *payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment and resets the linked appointment's payment
// status to pending.
func (s *DefaultPaymentService) Delete(ctx context.Context, id string) error {
	payment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return fmt.Errorf("payment with id %s not found", id)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	pending := models.PaymentPending
	var zeroAmount float64
	empty := ""
	result := s.Scheduler.Update(ctx, payment.AppointmentID, models.AppointmentUpdate{
		PaymentStatus: &pending,
		PaymentAmount: &zeroAmount,
		PaymentMethod: &empty,
		PaymentDate:   &empty,
	})
	if !result.Success {
		s.Logger.Warn("payment deleted but appointment reset failed",
			zap.String("paymentId", id),
			zap.String("appointmentId", payment.AppointmentID),
			zap.String("error", result.Error))
	}
	return nil
}

// GetByID retrieves a payment, or nil if absent.
func (s *DefaultPaymentService) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return s.Repo.GetByID(ctx, id)
}

// List retrieves all payments, newest payment date first.
func (s *DefaultPaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.GetAll(ctx)
}

// ListByPatient retrieves a patient's payments, newest first.
func (s *DefaultPaymentService) ListByPatient(ctx context.Context, patientID string) ([]models.Payment, error) {
	return s.Repo.GetByPatient(ctx, patientID)
}

// Fees returns the configured consultation fees, with defaults when none
// were saved yet.
func (s *DefaultPaymentService) Fees(ctx context.Context) (*models.ConsultationFees, error) {
	fees, err := s.Repo.GetFees(ctx)
	if err != nil {
		return nil, err
	}
	if fees == nil {
		defaults := defaultFees
		return &defaults, nil
	}
	return fees, nil
}

// SaveFees stores the consultation fee settings.
func (s *DefaultPaymentService) SaveFees(ctx context.Context, fees models.ConsultationFees) (*models.ConsultationFees, error) {
	fees.UpdatedAt = time.Now().UTC()
	if err := s.Repo.SaveFees(ctx, &fees); err != nil {
		return nil, err
	}
	return &fees, nil
}

// Summary aggregates payments for the current month: revenue counts fully
// paid payments, received also counts partials, and pending accumulates
// everything unpaid outside the current month.
func (s *DefaultPaymentService) Summary(ctx context.Context) (*models.FinancialSummary, error) {
	payments, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	currentMonth := time.Now().Format("2006-01")
	var summary models.FinancialSummary
	for _, p := range payments {
		if monthOf(p.PaymentDate) == currentMonth {
			switch p.Status {
			case models.PaymentPaid:
				summary.MonthlyRevenue += p.Amount
				summary.Received += p.Amount
			case models.PaymentPartial:
				summary.Received += p.Amount
			}
		} else if p.Status != models.PaymentPaid {
			summary.Pending += p.Amount
		}
	}
	return &summary, nil
}

// Report aggregates payments whose payment date falls in the inclusive
// [startDate, endDate] range.
func (s *DefaultPaymentService) Report(ctx context.Context, startDate, endDate string) (*models.FinancialReport, error) {
	if startDate == "" || endDate == "" {
		return nil, errors.New("Selecione as datas de início e fim para gerar o relatório.")
	}

	payments, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := models.FinancialReport{MethodsBreakdown: make(map[string]float64)}
	for _, p := range payments {
		if p.PaymentDate < startDate || p.PaymentDate > endDate {
			continue
		}
		report.PaymentCount++
		if p.Status == models.PaymentPaid {
			report.TotalReceived += p.Amount
		} else {
			report.TotalPending += p.Amount
		}
		report.MethodsBreakdown[p.Method] += p.Amount
	}
	return &report, nil
}

// stampAppointment copies the payment details onto the linked appointment.
func (s *DefaultPaymentService) stampAppointment(ctx context.Context, payment models.Payment) error {
	result := s.Scheduler.Update(ctx, payment.AppointmentID, models.AppointmentUpdate{
		PaymentStatus: &payment.Status,
		PaymentAmount: &payment.Amount,
		PaymentMethod: &payment.Method,
		PaymentDate:   &payment.PaymentDate,
	})
	if !result.Success {
		return fmt.Errorf("failed to update appointment payment status: %s", result.Error)
	}
	return nil
}

// monthOf truncates a "YYYY-MM-DD" date to its "YYYY-MM" month.
func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
