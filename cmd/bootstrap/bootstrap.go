package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-ops-api/config"
	deliveryHttp "clinic-ops-api/internal/delivery/http"
	"clinic-ops-api/internal/delivery/http/handler"
	"clinic-ops-api/internal/delivery/http/middleware"
	"clinic-ops-api/internal/infrastructure/cache"
	"clinic-ops-api/internal/infrastructure/database"
	"clinic-ops-api/internal/repository"
	"clinic-ops-api/internal/service"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/jwt"
	"clinic-ops-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const migrationsPath = "file://db/migrations"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	SweepWorker *service.MissedAppointmentWorker
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if err := database.RunMigrations(cfg.DB, migrationsPath); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires repositories, usecases, handlers, and background
// services, then builds the HTTP server.
func (app *App) initialize() error {
	cfg := app.Config
	db := app.DB
	redisClient := app.RedisClient

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	employeeRepo := repository.NewEmployeeRepository()
	clinicRepo := repository.NewClinicRepository()
	departmentRepo := repository.NewDepartmentRepository()
	serviceRepo := repository.NewServiceRepository()
	scheduleRepo := repository.NewScheduleRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	transactionRepo := repository.NewTransactionRepository()
	testResultRepo := repository.NewTestResultRepository()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, userRepo)
	employeeUsecase := usecase.NewEmployeeUsecase(db, log, employeeRepo, userRepo, clinicRepo)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo)
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, departmentRepo)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, departmentRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, employeeRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, scheduleRepo, patientRepo, employeeRepo)
	transactionUsecase := usecase.NewTransactionUsecase(db, log, transactionRepo, appointmentRepo, patientRepo, serviceRepo, employeeRepo)
	testResultUsecase := usecase.NewTestResultUsecase(db, log, testResultRepo, patientRepo, serviceRepo, employeeRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, jwtService, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	employeeHandler := handler.NewEmployeeHandler(employeeUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	departmentHandler := handler.NewDepartmentHandler(departmentUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	transactionHandler := handler.NewTransactionHandler(transactionUsecase, customValidator)
	testResultHandler := handler.NewTestResultHandler(testResultUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		employeeHandler,
		clinicHandler,
		departmentHandler,
		serviceHandler,
		scheduleHandler,
		appointmentHandler,
		transactionHandler,
		testResultHandler,
		authMiddleware,
		corsMiddleware,
	)

	// Baseline records
	seedService := service.NewSeedService(db, log, userRepo, clinicRepo, cfg.Seed)
	if err := seedService.Run(context.Background()); err != nil {
		return fmt.Errorf("failed to seed baseline records: %w", err)
	}

	app.SweepWorker = service.NewMissedAppointmentWorker(log, appointmentUsecase, redisClient, cfg.Sweep)

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}

	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if err := app.SweepWorker.Start(); err != nil {
		logrus.Fatalf("Failed to start sweep worker: %v", err)
	}

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.SweepWorker.Stop()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
