package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"mentepro/config"
	"mentepro/cron"
	"mentepro/database"
	appointmentRepo "mentepro/database/repository/appointment"
	patientRepo "mentepro/database/repository/patient"
	paymentRepo "mentepro/database/repository/payment"
	recordsRepo "mentepro/database/repository/records"
	userRepoPkg "mentepro/database/repository/user"
	"mentepro/handlers"
	"mentepro/middleware"
	"mentepro/routes"
	"mentepro/services/patient"
	"mentepro/services/payment"
	"mentepro/services/records"
	"mentepro/services/scheduler"
	"mentepro/services/tasks"
	"mentepro/services/user"
	"mentepro/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSnapshotStore()
	utils.InitAuthCache()

	// Reminder queue client and its background worker.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	payRepo := paymentRepo.NewMongoPaymentRepo()
	recRepo := recordsRepo.NewMongoRecordRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	schedulingService := scheduler.NewSchedulingService(
		apptRepo,
		scheduler.NewRedisSnapshotStore(utils.GetSnapshotClient()),
		logger,
	)
	schedulingService.Reminders = &tasks.AsynqReminderScheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	patientService := &patient.DefaultPatientService{
		Repo:   patRepo,
		Logger: logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:      payRepo,
		Patients:  patRepo,
		Scheduler: schedulingService,
		Logger:    logger,
	}
	recordService := &records.DefaultRecordService{
		Repo:   recRepo,
		Logger: logger,
	}
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	// Warm the in-memory appointment collection before serving traffic.
	reloadCtx, cancelReload := context.WithTimeout(context.Background(), 15*time.Second)
	if err := schedulingService.Reload(reloadCtx); err != nil {
		logger.Sugar().Warnf("main: could not warm appointment collection: %v", err)
	}
	cancelReload()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSnapshotClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Appointments: handlers.NewAppointmentHandler(schedulingService, logger),
		Patients:     handlers.NewPatientHandler(patientService, logger),
		Payments:     handlers.NewPaymentHandler(paymentService, logger),
		Records:      handlers.NewRecordHandler(recordService, logger),
		Auth:         handlers.NewAuthHandler(userService, logger),
		UserRepo:     userRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
