package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/response"
	"clinic-ops-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create books an appointment by reserving a morning and an afternoon slot
// @Summary Book an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorBody
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// Complete marks an appointment finished
// @Summary Complete an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param appointmentId path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorBody
// @Router /appointments/complete/{appointmentId} [post]
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.CompleteAppointment(r.Context(), uint(id))
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

// CancelMissed sweeps PENDING appointments whose visit time has passed
// @Summary Cancel missed appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/cancel-missed [post]
func (h *AppointmentHandler) CancelMissed(w http.ResponseWriter, r *http.Request) {
	if _, err := h.appointmentUsecase.CancelMissedAppointments(r.Context()); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Missed appointments cancelled successfully", nil)
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	appointments, total, err := h.appointmentUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, meta(page, limit, total))
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
