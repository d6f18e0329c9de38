package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"mentepro/models"
)

// fakeRepo is an in-memory AppointmentRepository. When failing is set every
// method returns an error, simulating an unreachable store.
type fakeRepo struct {
	appts   []models.Appointment
	failing bool
}

var errStoreDown = errors.New("store unreachable")

func (r *fakeRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if r.failing {
		return errStoreDown
	}
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, appt *models.Appointment) error {
	if r.failing {
		return errStoreDown
	}
	for i := range r.appts {
		if r.appts[i].ID == appt.ID {
			r.appts[i] = *appt
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeRepo) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	if r.failing {
		return errStoreDown
	}
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if r.failing {
		return errStoreDown
	}
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if r.failing {
		return nil, errStoreDown
	}
	for i := range r.appts {
		if r.appts[i].ID == id {
			appt := r.appts[i]
			return &appt, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	if r.failing {
		return nil, errStoreDown
	}
	out := make([]models.Appointment, len(r.appts))
	copy(out, r.appts)
	return out, nil
}

func (r *fakeRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	if r.failing {
		return nil, errStoreDown
	}
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if r.failing {
		return nil, errStoreDown
	}
	var out []models.Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	if r.failing {
		return nil, errStoreDown
	}
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeSnapshot is an in-memory SnapshotStore.
type fakeSnapshot struct {
	appts []models.Appointment
	saves int
}

func (s *fakeSnapshot) Load(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, len(s.appts))
	copy(out, s.appts)
	return out, nil
}

func (s *fakeSnapshot) Save(ctx context.Context, appts []models.Appointment) error {
	s.appts = make([]models.Appointment, len(appts))
	copy(s.appts, appts)
	s.saves++
	return nil
}

// testNow is the injected clock: 08:00 local on 2026-03-10.
var testNow = time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)

const (
	today    = "2026-03-10"
	tomorrow = "2026-03-11"
)

func newTestService() *DefaultSchedulingService {
	svc := NewSchedulingService(nil, nil, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func validInput() models.AppointmentInput {
	return models.AppointmentInput{
		PatientID:   "p-1",
		PatientName: "Maria Souza",
		Date:        today,
		Time:        "09:00",
		Duration:    50,
		Type:        "consulta",
	}
}

func mustCreate(t *testing.T, svc *DefaultSchedulingService, input models.AppointmentInput) models.Appointment {
	t.Helper()
	result := svc.Create(context.Background(), input)
	require.True(t, result.Success, "create failed: %s", result.Error)
	return *result.Appointment
}

func TestCreateAssignsDefaults(t *testing.T) {
	svc := newTestService()

	result := svc.Create(context.Background(), validInput())
	require.True(t, result.Success)
	require.NotNil(t, result.Appointment)

	appt := result.Appointment
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, models.PaymentPending, appt.PaymentStatus)
	assert.Equal(t, testNow.UTC(), appt.CreatedAt)
	assert.Equal(t, appt.CreatedAt, appt.UpdatedAt)
	assert.True(t, result.Persisted)
}

func TestCreateAccumulatesValidationErrors(t *testing.T) {
	svc := newTestService()

	result := svc.Create(context.Background(), models.AppointmentInput{})
	require.False(t, result.Success)

	for _, msg := range []string{
		"Paciente é obrigatório",
		"Data é obrigatória",
		"Horário é obrigatório",
		"Tipo de consulta é obrigatório",
	} {
		assert.Contains(t, result.Error, msg)
	}
	assert.Nil(t, result.Appointment)
	assert.Empty(t, svc.List())
}

func TestValidateRejectsPastDate(t *testing.T) {
	svc := newTestService()

	input := validInput()
	input.Date = "2026-03-09"
	v := svc.Validate(input)
	assert.False(t, v.IsValid)
	assert.Contains(t, v.Errors, "Data não pode ser no passado")

	// Today itself is allowed.
	v = svc.Validate(validInput())
	assert.True(t, v.IsValid)
}

func TestValidateRejectsMalformedDate(t *testing.T) {
	svc := newTestService()

	input := validInput()
	input.Date = "10/03/2026"
	v := svc.Validate(input)
	assert.False(t, v.IsValid)
	assert.Contains(t, v.Errors, "Data inválida")
}

func TestValidateDurationBounds(t *testing.T) {
	svc := newTestService()

	for _, duration := range []int{10, 14, 181, 200} {
		input := validInput()
		input.Duration = duration
		v := svc.Validate(input)
		assert.Contains(t, v.Errors, "Duração deve estar entre 15 e 180 minutos", "duration %d", duration)
	}

	for _, duration := range []int{15, 50, 180} {
		input := validInput()
		input.Duration = duration
		v := svc.Validate(input)
		assert.True(t, v.IsValid, "duration %d", duration)
	}
}

func TestConflictDetection(t *testing.T) {
	svc := newTestService()
	existing := mustCreate(t, svc, validInput()) // 09:00-09:50

	assert.True(t, svc.HasConflict(today, "09:30", 50, ""), "overlapping start")
	assert.True(t, svc.HasConflict(today, "08:30", 50, ""), "overlapping end")
	assert.True(t, svc.HasConflict(today, "09:10", 20, ""), "contained interval")

	// Half-open intervals: touching slots do not conflict.
	assert.False(t, svc.HasConflict(today, "09:50", 50, ""))
	assert.False(t, svc.HasConflict(today, "08:10", 50, ""))

	// Other dates never conflict.
	assert.False(t, svc.HasConflict(tomorrow, "09:30", 50, ""))

	// An appointment does not conflict with itself on re-validation.
	assert.False(t, svc.HasConflict(today, "09:00", 50, existing.ID))
}

func TestCreateRejectsConflictingSlot(t *testing.T) {
	svc := newTestService()
	mustCreate(t, svc, validInput())

	input := validInput()
	input.Time = "09:30"
	result := svc.Create(context.Background(), input)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Horário conflita com outro agendamento")
}

func TestCancelledAppointmentStillBlocksSlot(t *testing.T) {
	svc := newTestService()
	appt := mustCreate(t, svc, validInput())

	cancelled := models.StatusCancelled
	result := svc.Update(context.Background(), appt.ID, models.AppointmentUpdate{Status: &cancelled})
	require.True(t, result.Success)

	assert.True(t, svc.HasConflict(today, "09:00", 50, ""))
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	svc := newTestService()
	appt := mustCreate(t, svc, validInput())

	newTime := "10:00"
	confirmed := models.StatusConfirmed
	result := svc.Update(context.Background(), appt.ID, models.AppointmentUpdate{
		Time:   &newTime,
		Status: &confirmed,
	})
	require.True(t, result.Success)

	updated := svc.GetByID(appt.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "10:00", updated.Time)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, appt.PatientName, updated.PatientName)
	assert.Equal(t, appt.Date, updated.Date)
	assert.Equal(t, appt.CreatedAt, updated.CreatedAt)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService()

	result := svc.Update(context.Background(), "missing", models.AppointmentUpdate{})
	require.False(t, result.Success)
	assert.Equal(t, NotFoundError{ID: "missing"}.Error(), result.Error)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	appt := mustCreate(t, svc, validInput())

	result := svc.Delete(context.Background(), appt.ID)
	require.True(t, result.Success)
	assert.Nil(t, svc.GetByID(appt.ID))
	assert.Empty(t, svc.List())

	result = svc.Delete(context.Background(), appt.ID)
	assert.False(t, result.Success)
}

func TestFailedPersistKeepsLocalState(t *testing.T) {
	repo := &fakeRepo{failing: true}
	snap := &fakeSnapshot{}
	svc := NewSchedulingService(repo, snap, zap.NewNop())
	svc.now = func() time.Time { return testNow }

	result := svc.Create(context.Background(), validInput())
	require.True(t, result.Success)
	assert.False(t, result.Persisted)

	// The appointment survives locally and in the snapshot.
	assert.NotNil(t, svc.GetByID(result.Appointment.ID))
	assert.Len(t, snap.appts, 1)
}

func TestReloadFallsBackToSnapshot(t *testing.T) {
	repo := &fakeRepo{failing: true}
	snap := &fakeSnapshot{appts: []models.Appointment{
		{ID: "a-1", PatientID: "p-1", Date: today, Time: "09:00", Duration: 50},
	}}
	svc := NewSchedulingService(repo, snap, zap.NewNop())
	svc.now = func() time.Time { return testNow }

	require.NoError(t, svc.Reload(context.Background()))
	require.NotNil(t, svc.GetByID("a-1"))
}

func TestReloadPrefersStore(t *testing.T) {
	repo := &fakeRepo{appts: []models.Appointment{
		{ID: "a-1", Date: today, Time: "09:00", Duration: 50},
		{ID: "a-2", Date: tomorrow, Time: "10:00", Duration: 50},
	}}
	snap := &fakeSnapshot{appts: []models.Appointment{{ID: "stale"}}}
	svc := NewSchedulingService(repo, snap, zap.NewNop())
	svc.now = func() time.Time { return testNow }

	require.NoError(t, svc.Reload(context.Background()))
	assert.Len(t, svc.List(), 2)
	assert.Nil(t, svc.GetByID("stale"))
}

func TestQueriesByDatePeriodPatientStatus(t *testing.T) {
	svc := newTestService()

	a := validInput()
	mustCreate(t, svc, a)

	b := validInput()
	b.PatientID = "p-2"
	b.Date = tomorrow
	b.Time = "11:00"
	mustCreate(t, svc, b)

	c := validInput()
	c.Date = "2026-03-20"
	c.Time = "14:00"
	mustCreate(t, svc, c)

	assert.Len(t, svc.GetByDate(today), 1)
	assert.Len(t, svc.GetByPeriod(today, tomorrow), 2)
	assert.Len(t, svc.GetByPeriod("2026-03-01", "2026-03-31"), 3)
	assert.Empty(t, svc.GetByPeriod("not-a-date", tomorrow))
	assert.Len(t, svc.GetByPatient("p-1"), 2)
	assert.Len(t, svc.GetByStatus(models.StatusScheduled), 3)
	assert.Empty(t, svc.GetByStatus(models.StatusCompleted))
}

func TestUpcoming(t *testing.T) {
	svc := newTestService()

	times := []string{"14:00", "09:00", "11:00"}
	for i, clock := range times {
		input := validInput()
		input.Date = tomorrow
		input.Time = clock
		if i > 0 {
			input.PatientID = "p-2"
		}
		mustCreate(t, svc, input)
	}

	// A completed appointment never shows up as upcoming.
	done := validInput()
	done.Date = "2026-03-12"
	done.Time = "09:00"
	done.Status = models.StatusCompleted
	mustCreate(t, svc, done)

	upcoming := svc.Upcoming(2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "09:00", upcoming[0].Time)
	assert.Equal(t, "11:00", upcoming[1].Time)

	// Non-positive limit defaults to 5.
	assert.Len(t, svc.Upcoming(0), 3)
}

func TestToday(t *testing.T) {
	svc := newTestService()

	later := validInput()
	later.Time = "15:00"
	mustCreate(t, svc, later)

	earlier := validInput()
	earlier.Time = "09:00"
	earlier.PatientID = "p-2"
	mustCreate(t, svc, earlier)

	other := validInput()
	other.Date = tomorrow
	mustCreate(t, svc, other)

	todays := svc.Today()
	require.Len(t, todays, 2)
	assert.Equal(t, "09:00", todays[0].Time)
	assert.Equal(t, "15:00", todays[1].Time)
}

func TestStatisticsEmptyCollection(t *testing.T) {
	svc := newTestService()

	stats := svc.Statistics()
	assert.Zero(t, stats.Today)
	assert.Zero(t, stats.Week)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Total)
	for _, status := range models.AppointmentStatuses {
		count, ok := stats.StatusCounts[status]
		assert.True(t, ok, "missing bucket %s", status)
		assert.Zero(t, count)
	}
}

func TestStatistics(t *testing.T) {
	svc := newTestService()

	mustCreate(t, svc, validInput()) // scheduled, today

	confirmed := validInput()
	confirmed.Time = "11:00"
	confirmed.Status = models.StatusConfirmed
	mustCreate(t, svc, confirmed) // confirmed, today

	done := validInput()
	done.Date = tomorrow
	done.Status = models.StatusCompleted
	mustCreate(t, svc, done)

	farOut := validInput()
	farOut.Date = "2026-04-20"
	farOut.Time = "10:00"
	mustCreate(t, svc, farOut)

	stats := svc.Statistics()
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Pending) // scheduled + confirmed
	assert.Equal(t, 1, stats.Completed)
	assert.Zero(t, stats.Cancelled)
	assert.Equal(t, 2, stats.StatusCounts[models.StatusScheduled])
	assert.Equal(t, 1, stats.StatusCounts[models.StatusConfirmed])

	// Today and tomorrow fall in the current week; 2026-04-20 does not.
	assert.Equal(t, 3, stats.Week)
}

func TestExportJSONRoundTrip(t *testing.T) {
	svc := newTestService()
	mustCreate(t, svc, validInput())

	second := validInput()
	second.Date = tomorrow
	second.Notes = "retorno"
	mustCreate(t, svc, second)

	out, err := svc.Export("json")
	require.NoError(t, err)

	var decoded []models.Appointment
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, svc.List(), decoded)
}

func TestExportCSVQuotesEveryField(t *testing.T) {
	svc := newTestService()
	appt := mustCreate(t, svc, validInput())

	out, err := svc.Export("csv")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"ID","Paciente","Data","Horário","Tipo","Duração","Status","Pagamento","Observações","Criado em"`, lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 10)
	for _, field := range fields {
		assert.True(t, strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`), "field %s not quoted", field)
	}
	assert.Equal(t, `"`+appt.ID+`"`, fields[0])
	assert.Equal(t, `"Maria Souza"`, fields[1])
	assert.Equal(t, `"50"`, fields[5])
}

func TestExportUnknownFormat(t *testing.T) {
	svc := newTestService()

	_, err := svc.Export("xml")
	assert.Error(t, err)
}
