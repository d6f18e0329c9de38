package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentepro/models"
	"mentepro/services/scheduler"
)

// AppointmentHandler exposes the scheduling service over HTTP.
type AppointmentHandler struct {
	Scheduler scheduler.SchedulingService
	Logger    *zap.Logger
}

func NewAppointmentHandler(svc scheduler.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: svc, Logger: logger}
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := h.Scheduler.Create(c.Request.Context(), input)
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// UpdateAppointmentHandler handles PUT /api/appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	var input models.AppointmentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := h.Scheduler.Update(c.Request.Context(), c.Param("id"), input)
	if !result.Success {
		c.JSON(statusForSchedulerError(result.Error), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	result := h.Scheduler.Delete(c.Request.Context(), c.Param("id"))
	if !result.Success {
		c.JSON(statusForSchedulerError(result.Error), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt := h.Scheduler.GetByID(c.Param("id"))
	if appt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "agendamento não encontrado"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler handles GET /api/appointments. Optional query
// filters: date, startDate+endDate, patientId, status.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, h.Scheduler.GetByDate(date))
		return
	}
	if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		c.JSON(http.StatusOK, h.Scheduler.GetByPeriod(start, end))
		return
	}
	if patientID := c.Query("patientId"); patientID != "" {
		c.JSON(http.StatusOK, h.Scheduler.GetByPatient(patientID))
		return
	}
	if status := c.Query("status"); status != "" {
		c.JSON(http.StatusOK, h.Scheduler.GetByStatus(status))
		return
	}
	c.JSON(http.StatusOK, h.Scheduler.List())
}

// CheckConflictHandler handles POST /api/appointments/conflict.
func (h *AppointmentHandler) CheckConflictHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	conflict := h.Scheduler.HasConflict(input.Date, input.Time, input.Duration, input.ID)
	c.JSON(http.StatusOK, gin.H{"conflict": conflict})
}

// StatisticsHandler handles GET /api/appointments/stats.
func (h *AppointmentHandler) StatisticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Scheduler.Statistics())
}

// UpcomingHandler handles GET /api/appointments/upcoming?limit=N.
func (h *AppointmentHandler) UpcomingHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.Scheduler.Upcoming(limit))
}

// TodayHandler handles GET /api/appointments/today.
func (h *AppointmentHandler) TodayHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Scheduler.Today())
}

// ExportHandler handles GET /api/appointments/export?format=json|csv.
func (h *AppointmentHandler) ExportHandler(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	data, err := h.Scheduler.Export(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch format {
	case "csv":
		c.Header("Content-Disposition", "attachment; filename=agendamentos.csv")
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(data))
	default:
		c.Header("Content-Disposition", "attachment; filename=agendamentos.json")
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(data))
	}
}

// statusForSchedulerError maps a failed result's message to a status code:
// not-found lookups are 404, validation failures are 422.
func statusForSchedulerError(msg string) int {
	if strings.Contains(msg, "não encontrado") {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}
