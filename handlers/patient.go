package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentepro/models"
	"mentepro/services/patient"
)

// PatientHandler exposes the patient service over HTTP.
type PatientHandler struct {
	Service patient.PatientService
	Logger  *zap.Logger
}

func NewPatientHandler(svc patient.PatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{Service: svc, Logger: logger}
}

// CreatePatientHandler handles POST /api/patients.
func (h *PatientHandler) CreatePatientHandler(c *gin.Context) {
	var input models.Patient
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePatientHandler handles PUT /api/patients/:id.
func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	var input models.Patient
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

// DeletePatientHandler handles DELETE /api/patients/:id.
func (h *PatientHandler) DeletePatientHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		h.Logger.Error("failed to delete patient", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Paciente removido"})
}

// GetPatientHandler handles GET /api/patients/:id.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "paciente não encontrado"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchPatientsHandler handles GET /api/patients/search?q=, a substring
// search over name, email and phone. An empty query lists everyone.
func (h *PatientHandler) SearchPatientsHandler(c *gin.Context) {
	results, err := h.Service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// ListPatientsHandler handles GET /api/patients.
func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	patients, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}
