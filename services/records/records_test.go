package records

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mentepro/models"
)

type fakeRecordRepo struct {
	records []models.SessionRecord
}

func (r *fakeRecordRepo) Create(ctx context.Context, rec *models.SessionRecord) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeRecordRepo) Update(ctx context.Context, rec *models.SessionRecord) error {
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = *rec
			return nil
		}
	}
	return nil
}

func (r *fakeRecordRepo) Delete(ctx context.Context, id string) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRecordRepo) GetByID(ctx context.Context, id string) (*models.SessionRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *fakeRecordRepo) GetAll(ctx context.Context) ([]models.SessionRecord, error) {
	return r.sortedDesc(r.records), nil
}

func (r *fakeRecordRepo) GetByPatient(ctx context.Context, patientID string) ([]models.SessionRecord, error) {
	var out []models.SessionRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return r.sortedDesc(out), nil
}

// sortedDesc mirrors the Mongo repository's session_date descending order.
func (r *fakeRecordRepo) sortedDesc(in []models.SessionRecord) []models.SessionRecord {
	out := make([]models.SessionRecord, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		return out[i].SessionDate > out[j].SessionDate
	})
	return out
}

func newTestService() (*DefaultRecordService, *fakeRecordRepo) {
	repo := &fakeRecordRepo{}
	return &DefaultRecordService{Repo: repo, Logger: zap.NewNop()}, repo
}

func sessionFor(date string, mood, anxiety int) models.SessionRecord {
	return models.SessionRecord{
		PatientID:    "p-1",
		PatientName:  "Maria Souza",
		SessionDate:  date,
		SessionTime:  "09:00",
		Notes:        "evolução estável",
		MoodLevel:    mood,
		AnxietyLevel: anxiety,
	}
}

func TestSaveRequiresNotes(t *testing.T) {
	svc, repo := newTestService()

	input := sessionFor("2026-03-10", 7, 4)
	input.Notes = "   "
	_, err := svc.Save(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "As anotações da sessão são obrigatórias.", err.Error())
	assert.Empty(t, repo.records)
}

func TestSaveAssignsIDAndTimestamps(t *testing.T) {
	svc, _ := newTestService()

	saved, err := svc.Save(context.Background(), sessionFor("2026-03-10", 7, 4))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
}

func TestUpdateKeepsIdentityAndCreation(t *testing.T) {
	svc, _ := newTestService()

	saved, err := svc.Save(context.Background(), sessionFor("2026-03-10", 7, 4))
	require.NoError(t, err)

	input := sessionFor("2026-03-10", 8, 3)
	input.Notes = "melhora significativa"
	updated, err := svc.Update(context.Background(), saved.ID, input)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "melhora significativa", updated.Notes)
	assert.Equal(t, 8, updated.MoodLevel)
}

func TestUpdateUnknownRecord(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", sessionFor("2026-03-10", 7, 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTimelineNewestFirst(t *testing.T) {
	svc, _ := newTestService()

	for _, date := range []string{"2026-01-10", "2026-03-10", "2026-02-10"} {
		_, err := svc.Save(context.Background(), sessionFor(date, 5, 5))
		require.NoError(t, err)
	}

	timeline, err := svc.Timeline(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, timeline, 3)
	assert.Equal(t, "2026-03-10", timeline[0].SessionDate)
	assert.Equal(t, "2026-01-10", timeline[2].SessionDate)
}

func TestProgressSeriesSortsAscending(t *testing.T) {
	svc, _ := newTestService()

	points := []struct {
		date string
		mood int
	}{
		{"2026-03-10", 8},
		{"2026-01-10", 4},
		{"2026-02-10", 6},
	}
	for _, p := range points {
		_, err := svc.Save(context.Background(), sessionFor(p.date, p.mood, 5))
		require.NoError(t, err)
	}

	series, err := svc.ProgressSeries(context.Background(), "p-1", models.MetricMood)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, models.ProgressPoint{Date: "2026-01-10", Level: 4}, series[0])
	assert.Equal(t, models.ProgressPoint{Date: "2026-02-10", Level: 6}, series[1])
	assert.Equal(t, models.ProgressPoint{Date: "2026-03-10", Level: 8}, series[2])
}

func TestProgressSeriesUnknownMetric(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Save(context.Background(), sessionFor("2026-03-10", 7, 4))
	require.NoError(t, err)

	_, err = svc.ProgressSeries(context.Background(), "p-1", "sleep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown progress metric")
}
