package http

import (
	"net/http"

	"clinic-ops-api/internal/delivery/http/handler"
	"clinic-ops-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	employeeHandler    *handler.EmployeeHandler
	clinicHandler      *handler.ClinicHandler
	departmentHandler  *handler.DepartmentHandler
	serviceHandler     *handler.ServiceHandler
	scheduleHandler    *handler.ScheduleHandler
	appointmentHandler *handler.AppointmentHandler
	transactionHandler *handler.TransactionHandler
	testResultHandler  *handler.TestResultHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	employeeHandler *handler.EmployeeHandler,
	clinicHandler *handler.ClinicHandler,
	departmentHandler *handler.DepartmentHandler,
	serviceHandler *handler.ServiceHandler,
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	transactionHandler *handler.TransactionHandler,
	testResultHandler *handler.TestResultHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		employeeHandler:    employeeHandler,
		clinicHandler:      clinicHandler,
		departmentHandler:  departmentHandler,
		serviceHandler:     serviceHandler,
		scheduleHandler:    scheduleHandler,
		appointmentHandler: appointmentHandler,
		transactionHandler: transactionHandler,
		testResultHandler:  testResultHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires authentication
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// User management (director)
	users := protected.PathPrefix("/users").Subrouter()
	users.Use(middleware.RequireDirector)
	users.HandleFunc("", r.userHandler.Create).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.GetAll).Methods(http.MethodGet)
	users.HandleFunc("/page", r.userHandler.GetPage).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	// Patients (staff)
	patients := protected.PathPrefix("/patients").Subrouter()
	patients.Use(middleware.RequireStaff)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAll).Methods(http.MethodGet)
	patients.HandleFunc("/page", r.patientHandler.GetPage).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Employees (director)
	employees := protected.PathPrefix("/employees").Subrouter()
	employees.Use(middleware.RequireDirector)
	employees.HandleFunc("", r.employeeHandler.Create).Methods(http.MethodPost)
	employees.HandleFunc("", r.employeeHandler.GetAll).Methods(http.MethodGet)
	employees.HandleFunc("/page", r.employeeHandler.GetPage).Methods(http.MethodGet)
	employees.HandleFunc("/{id}", r.employeeHandler.GetByID).Methods(http.MethodGet)
	employees.HandleFunc("/{id}", r.employeeHandler.Update).Methods(http.MethodPut)
	employees.HandleFunc("/{id}", r.employeeHandler.Delete).Methods(http.MethodDelete)

	// Clinics (director)
	clinics := protected.PathPrefix("/clinics").Subrouter()
	clinics.Use(middleware.RequireDirector)
	clinics.HandleFunc("", r.clinicHandler.Create).Methods(http.MethodPost)
	clinics.HandleFunc("", r.clinicHandler.GetAll).Methods(http.MethodGet)
	clinics.HandleFunc("/page", r.clinicHandler.GetPage).Methods(http.MethodGet)
	clinics.HandleFunc("/{id}", r.clinicHandler.GetByID).Methods(http.MethodGet)
	clinics.HandleFunc("/{id}", r.clinicHandler.Update).Methods(http.MethodPut)
	clinics.HandleFunc("/{id}", r.clinicHandler.Delete).Methods(http.MethodDelete)

	// Departments (director)
	departments := protected.PathPrefix("/departments").Subrouter()
	departments.Use(middleware.RequireDirector)
	departments.HandleFunc("", r.departmentHandler.Create).Methods(http.MethodPost)
	departments.HandleFunc("", r.departmentHandler.GetAll).Methods(http.MethodGet)
	departments.HandleFunc("/page", r.departmentHandler.GetPage).Methods(http.MethodGet)
	departments.HandleFunc("/{id}", r.departmentHandler.GetByID).Methods(http.MethodGet)
	departments.HandleFunc("/{id}", r.departmentHandler.Update).Methods(http.MethodPut)
	departments.HandleFunc("/{id}", r.departmentHandler.Delete).Methods(http.MethodDelete)

	// Services (director)
	services := protected.PathPrefix("/services").Subrouter()
	services.Use(middleware.RequireDirector)
	services.HandleFunc("", r.serviceHandler.Create).Methods(http.MethodPost)
	services.HandleFunc("", r.serviceHandler.GetAll).Methods(http.MethodGet)
	services.HandleFunc("/page", r.serviceHandler.GetPage).Methods(http.MethodGet)
	services.HandleFunc("/{id}", r.serviceHandler.GetByID).Methods(http.MethodGet)
	services.HandleFunc("/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	services.HandleFunc("/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	// Schedules (staff; slot generation restricted to doctors/director)
	schedules := protected.PathPrefix("/schedules").Subrouter()
	schedules.Use(middleware.RequireStaff)
	schedules.HandleFunc("", r.scheduleHandler.Create).Methods(http.MethodPost)
	schedules.HandleFunc("", r.scheduleHandler.GetAll).Methods(http.MethodGet)
	schedules.HandleFunc("/page", r.scheduleHandler.GetPage).Methods(http.MethodGet)
	schedules.HandleFunc("/available-slots", r.scheduleHandler.GetAvailableSlots).Methods(http.MethodGet)
	schedules.HandleFunc("/{id}", r.scheduleHandler.GetByID).Methods(http.MethodGet)
	schedules.HandleFunc("/{id}", r.scheduleHandler.Delete).Methods(http.MethodDelete)

	// Appointments (staff)
	appointments := protected.PathPrefix("/appointments").Subrouter()
	appointments.Use(middleware.RequireStaff)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	appointments.HandleFunc("/page", r.appointmentHandler.GetPage).Methods(http.MethodGet)
	appointments.HandleFunc("/complete/{appointmentId}", r.appointmentHandler.Complete).Methods(http.MethodPost)
	appointments.HandleFunc("/cancel-missed", r.appointmentHandler.CancelMissed).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Transactions (cashier)
	transactions := protected.PathPrefix("/transactions").Subrouter()
	transactions.Use(middleware.RequireCashier)
	transactions.HandleFunc("", r.transactionHandler.Create).Methods(http.MethodPost)
	transactions.HandleFunc("", r.transactionHandler.GetAll).Methods(http.MethodGet)
	transactions.HandleFunc("/page", r.transactionHandler.GetPage).Methods(http.MethodGet)
	transactions.HandleFunc("/patient/{patientId}", r.transactionHandler.GetByPatientID).Methods(http.MethodGet)
	transactions.HandleFunc("/{id}", r.transactionHandler.GetByID).Methods(http.MethodGet)
	transactions.HandleFunc("/{id}", r.transactionHandler.Delete).Methods(http.MethodDelete)

	// Test results (lab technicians)
	testResults := protected.PathPrefix("/test-results").Subrouter()
	testResults.Use(middleware.RequireLabTechnician)
	testResults.HandleFunc("", r.testResultHandler.Create).Methods(http.MethodPost)
	testResults.HandleFunc("", r.testResultHandler.GetAll).Methods(http.MethodGet)
	testResults.HandleFunc("/page", r.testResultHandler.GetPage).Methods(http.MethodGet)
	testResults.HandleFunc("/{id}", r.testResultHandler.GetByID).Methods(http.MethodGet)
	testResults.HandleFunc("/{id}", r.testResultHandler.Update).Methods(http.MethodPut)
	testResults.HandleFunc("/{id}", r.testResultHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
