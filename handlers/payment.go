package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentepro/models"
	"mentepro/services/payment"
)

// PaymentHandler exposes the payment service over HTTP.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// RegisterPaymentHandler handles POST /api/payments.
func (h *PaymentHandler) RegisterPaymentHandler(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePaymentHandler handles PUT /api/payments/:id.
func (h *PaymentHandler) UpdatePaymentHandler(c *gin.Context) {
	var input models.PaymentInput
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

// DeletePaymentHandler handles DELETE /api/payments/:id.
func (h *PaymentHandler) DeletePaymentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		h.Logger.Error("failed to delete payment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pagamento removido"})
}

// GetPaymentHandler handles GET /api/payments/:id.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pagamento não encontrado"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPaymentsHandler handles GET /api/payments, optionally filtered by
// ?patientId=.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	var (
		payments []models.Payment
		err      error
	)
	if patientID := c.Query("patientId"); patientID != "" {
		payments, err = h.Service.ListByPatient(c.Request.Context(), patientID)
	} else {
		payments, err = h.Service.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetFeesHandler handles GET /api/payments/fees.
func (h *PaymentHandler) GetFeesHandler(c *gin.Context) {
	fees, err := h.Service.Fees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fees)
}

// SaveFeesHandler handles PUT /api/payments/fees.
func (h *PaymentHandler) SaveFeesHandler(c *gin.Context) {
	var input models.ConsultationFees
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.SaveFees(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SummaryHandler handles GET /api/payments/summary.
func (h *PaymentHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ReportHandler handles GET /api/payments/report?startDate=&endDate=.
func (h *PaymentHandler) ReportHandler(c *gin.Context) {
	report, err := h.Service.Report(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
