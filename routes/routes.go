package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mentepro/config"
	"mentepro/handlers"
	"mentepro/middleware"
)

// RegisterAuthRoutes registers staff account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterAppointmentRoutes registers the scheduling endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Appointments.ListAppointmentsHandler)
		api.POST("", hb.Appointments.CreateAppointmentHandler)
		api.GET("/id/:id", hb.Appointments.GetAppointmentHandler)
		api.PUT("/id/:id", hb.Appointments.UpdateAppointmentHandler)
		api.DELETE("/id/:id", hb.Appointments.DeleteAppointmentHandler)

		api.POST("/conflict", hb.Appointments.CheckConflictHandler)
		api.GET("/stats", hb.Appointments.StatisticsHandler)
		api.GET("/upcoming", hb.Appointments.UpcomingHandler)
		api.GET("/today", hb.Appointments.TodayHandler)
		api.GET("/export", hb.Appointments.ExportHandler)
	}
}

// RegisterPatientRoutes registers patient management endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Patients.ListPatientsHandler)
		api.POST("", hb.Patients.CreatePatientHandler)
		api.GET("/search", hb.Patients.SearchPatientsHandler)
		api.GET("/id/:id", hb.Patients.GetPatientHandler)
		api.PUT("/id/:id", hb.Patients.UpdatePatientHandler)
		api.DELETE("/id/:id", hb.Patients.DeletePatientHandler)
	}
}

// RegisterPaymentRoutes registers payment and financial endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Payments.ListPaymentsHandler)
		api.POST("", hb.Payments.RegisterPaymentHandler)
		api.GET("/id/:id", hb.Payments.GetPaymentHandler)
		api.PUT("/id/:id", hb.Payments.UpdatePaymentHandler)
		api.DELETE("/id/:id", hb.Payments.DeletePaymentHandler)

		api.GET("/fees", hb.Payments.GetFeesHandler)
		api.PUT("/fees", hb.Payments.SaveFeesHandler)
		api.GET("/summary", hb.Payments.SummaryHandler)
		api.GET("/report", hb.Payments.ReportHandler)
	}
}

// RegisterRecordRoutes registers clinical session record endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/records")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Records.CreateRecordHandler)
		api.GET("/id/:id", hb.Records.GetRecordHandler)
		api.PUT("/id/:id", hb.Records.UpdateRecordHandler)
		api.DELETE("/id/:id", hb.Records.DeleteRecordHandler)

		api.GET("/patient/:patientId", hb.Records.TimelineHandler)
		api.GET("/patient/:patientId/progress", hb.Records.ProgressHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterHealthRoute(r)
}

func allowedOrigins() []string {
	raw := config.AppConfig.AllowedOrigins
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
