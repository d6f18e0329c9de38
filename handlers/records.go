package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentepro/models"
	"mentepro/services/records"
)

// RecordHandler exposes clinical session records over HTTP.
type RecordHandler struct {
	Service records.RecordService
	Logger  *zap.Logger
}

func NewRecordHandler(svc records.RecordService, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{Service: svc, Logger: logger}
}

// CreateRecordHandler handles POST /api/records.
func (h *RecordHandler) CreateRecordHandler(c *gin.Context) {
	var input models.SessionRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.Save(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateRecordHandler handles PUT /api/records/:id.
func (h *RecordHandler) UpdateRecordHandler(c *gin.Context) {
	var input models.SessionRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRecordHandler handles DELETE /api/records/:id.
func (h *RecordHandler) DeleteRecordHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		h.Logger.Error("failed to delete session record", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro removido"})
}

// GetRecordHandler handles GET /api/records/:id.
func (h *RecordHandler) GetRecordHandler(c *gin.Context) {
	record, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "registro não encontrado"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// TimelineHandler handles GET /api/records/patient/:patientId.
func (h *RecordHandler) TimelineHandler(c *gin.Context) {
	sessions, err := h.Service.Timeline(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// ProgressHandler handles GET /api/records/patient/:patientId/progress?metric=.
func (h *RecordHandler) ProgressHandler(c *gin.Context) {
	metric := c.DefaultQuery("metric", models.MetricMood)
	points, err := h.Service.ProgressSeries(c.Request.Context(), c.Param("patientId"), metric)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}
