package patient

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	patientRepo "mentepro/database/repository/patient"
	"mentepro/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultPatientService is the production implementation backed by the
// patient repository.
type DefaultPatientService struct {
	Repo   patientRepo.PatientRepository
	Logger *zap.Logger
}

// Create validates and stores a new patient, defaulting status to active.
func (s *DefaultPatientService) Create(ctx context.Context, input models.Patient) (*models.Patient, error) {
	if err := validatePatient(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	input.ID = uuid.New().String()
	if input.Status == "" {
		input.Status = models.PatientActive
	}
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := s.Repo.Create(ctx, &input); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	s.Logger.Info("patient created", zap.String("patientId", input.ID))
	return &input, nil
}

// Update validates and merges changes into an existing patient.
func (s *DefaultPatientService) Update(ctx context.Context, id string, input models.Patient) (*models.Patient, error) {
	if err := validatePatient(input); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("patient with id %s not found", id)
	}

	existing.Name = input.Name
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.BirthDate = input.BirthDate
	existing.CPF = input.CPF
	existing.Address = input.Address
	existing.EmergencyContact = input.EmergencyContact
	if input.Status != "" {
		existing.Status = input.Status
	}
	existing.Notes = input.Notes
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return existing, nil
}

// Delete removes a patient record.
func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient with id %s: %w", id, err)
	}
	s.Logger.Info("patient deleted", zap.String("patientId", id))
	return nil
}

// GetByID retrieves a patient, or nil if absent.
func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

// List retrieves all patients.
func (s *DefaultPatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.Repo.GetAll(ctx)
}

// Search finds patients by name, email or phone substring.
func (s *DefaultPatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	if query == "" {
		return s.Repo.GetAll(ctx)
	}
	return s.Repo.Search(ctx, query)
}

// validatePatient applies the registration rules and reports the first
// violation found.
func validatePatient(p models.Patient) error {
	if len([]rune(p.Name)) < 2 {
		return errors.New("Nome deve ter pelo menos 2 caracteres.")
	}
	if !emailPattern.MatchString(p.Email) {
		return errors.New("E-mail inválido.")
	}
	if digitCount(p.Phone) < 10 {
		return errors.New("Telefone deve ter pelo menos 10 dígitos.")
	}
	if p.BirthDate == "" {
		return errors.New("Data de nascimento é obrigatória.")
	}
	birth, err := time.ParseInLocation("2006-01-02", p.BirthDate, time.Local)
	if err != nil {
		return errors.New("Data de nascimento inválida.")
	}
	if birth.After(time.Now()) {
		return errors.New("Data de nascimento não pode ser no futuro.")
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
