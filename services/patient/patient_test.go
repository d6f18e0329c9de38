package patient

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mentepro/models"
)

type fakePatientRepo struct {
	patients []models.Patient
}

func (r *fakePatientRepo) Create(ctx context.Context, p *models.Patient) error {
	r.patients = append(r.patients, *p)
	return nil
}

func (r *fakePatientRepo) Update(ctx context.Context, p *models.Patient) error {
	for i := range r.patients {
		if r.patients[i].ID == p.ID {
			r.patients[i] = *p
			return nil
		}
	}
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id string) error {
	for i := range r.patients {
		if r.patients[i].ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	for i := range r.patients {
		if r.patients[i].ID == id {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) GetAll(ctx context.Context) ([]models.Patient, error) {
	out := make([]models.Patient, len(r.patients))
	copy(out, r.patients)
	return out, nil
}

func (r *fakePatientRepo) Search(ctx context.Context, query string) ([]models.Patient, error) {
	query = strings.ToLower(query)
	var out []models.Patient
	for _, p := range r.patients {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Email), query) ||
			strings.Contains(p.Phone, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService() (*DefaultPatientService, *fakePatientRepo) {
	repo := &fakePatientRepo{}
	return &DefaultPatientService{Repo: repo, Logger: zap.NewNop()}, repo
}

func validPatient() models.Patient {
	return models.Patient{
		Name:      "Maria Souza",
		Email:     "maria@example.com",
		Phone:     "(11) 98765-4321",
		BirthDate: "1990-05-20",
	}
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), validPatient())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PatientActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, repo.patients, 1)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name   string
		mutate func(*models.Patient)
		want   string
	}{
		{"short name", func(p *models.Patient) { p.Name = "A" }, "Nome deve ter pelo menos 2 caracteres."},
		{"bad email", func(p *models.Patient) { p.Email = "maria@" }, "E-mail inválido."},
		{"short phone", func(p *models.Patient) { p.Phone = "12345" }, "Telefone deve ter pelo menos 10 dígitos."},
		{"missing birth date", func(p *models.Patient) { p.BirthDate = "" }, "Data de nascimento é obrigatória."},
		{"malformed birth date", func(p *models.Patient) { p.BirthDate = "20/05/1990" }, "Data de nascimento inválida."},
		{"future birth date", func(p *models.Patient) { p.BirthDate = "2090-01-01" }, "Data de nascimento não pode ser no futuro."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validPatient()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestUpdateMergesFields(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validPatient())
	require.NoError(t, err)

	input := validPatient()
	input.Phone = "(11) 91111-2222"
	input.Notes = "prefere sessões à tarde"
	updated, err := svc.Update(context.Background(), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "(11) 91111-2222", updated.Phone)
	assert.Equal(t, "prefere sessões à tarde", updated.Notes)
	assert.Equal(t, models.PatientActive, updated.Status, "empty status keeps the stored one")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateUnknownPatient(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", validPatient())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSearchEmptyQueryListsAll(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), validPatient())
	require.NoError(t, err)

	second := validPatient()
	second.Name = "João Lima"
	second.Email = "joao@example.com"
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	all, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := svc.Search(context.Background(), "joão")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "João Lima", found[0].Name)
}
