package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mentepro/models"
	"mentepro/services/scheduler"
)

func newTestRouter() (*gin.Engine, scheduler.SchedulingService) {
	gin.SetMode(gin.TestMode)

	svc := scheduler.NewSchedulingService(nil, nil, zap.NewNop())
	h := NewAppointmentHandler(svc, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/appointments")
	api.GET("", h.ListAppointmentsHandler)
	api.POST("", h.CreateAppointmentHandler)
	api.GET("/id/:id", h.GetAppointmentHandler)
	api.PUT("/id/:id", h.UpdateAppointmentHandler)
	api.DELETE("/id/:id", h.DeleteAppointmentHandler)
	api.POST("/conflict", h.CheckConflictHandler)
	api.GET("/stats", h.StatisticsHandler)
	api.GET("/export", h.ExportHandler)
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func apptInput() models.AppointmentInput {
	return models.AppointmentInput{
		PatientID:   "p-1",
		PatientName: "Maria Souza",
		Date:        "2030-01-15",
		Time:        "09:00",
		Duration:    50,
		Type:        "consulta",
	}
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/appointments", apptInput())
	require.Equal(t, http.StatusCreated, w.Code)

	var result models.AppointmentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.NotNil(t, result.Appointment)
	assert.Equal(t, models.StatusScheduled, result.Appointment.Status)
}

func TestCreateAppointmentEndpointValidation(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/appointments", models.AppointmentInput{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var result models.AppointmentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Paciente é obrigatório")
}

func TestUpdateAppointmentEndpointNotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/appointments/id/missing", models.AppointmentUpdate{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConflictEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/appointments", apptInput())
	require.Equal(t, http.StatusCreated, w.Code)

	overlapping := apptInput()
	overlapping.Time = "09:30"
	w = doJSON(t, r, http.MethodPost, "/api/appointments/conflict", overlapping)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"conflict": true}`, w.Body.String())

	touching := apptInput()
	touching.Time = "09:50"
	w = doJSON(t, r, http.MethodPost, "/api/appointments/conflict", touching)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"conflict": false}`, w.Body.String())
}

func TestExportEndpointCSV(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/appointments", apptInput())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/appointments/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), `"ID","Paciente"`))
}

func TestExportEndpointUnknownFormat(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/appointments/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndDeleteEndpoints(t *testing.T) {
	r, svc := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/appointments", apptInput())
	require.Equal(t, http.StatusCreated, w.Code)
	appt := svc.List()[0]

	w = doJSON(t, r, http.MethodGet, "/api/appointments?date=2030-01-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/appointments/id/"+appt.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.List())
}
