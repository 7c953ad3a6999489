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

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// Create expands a doctor's declared shift into bookable slots
// @Summary Generate slots for a doctor's shift
// @Tags Schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Create Schedule Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorBody
// @Router /schedules [post]
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedules, err := h.scheduleUsecase.CreateSchedule(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Schedules created successfully", schedules)
}

// GetAvailableSlots lists the open slots for a doctor on a given day
// @Summary List available slots
// @Tags Schedules
// @Produce json
// @Param doctorId query int true "Doctor ID"
// @Param dayOfWeek query string true "Day of week (MONDAY..SUNDAY)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorBody
// @Router /schedules/available-slots [get]
func (h *ScheduleHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseUint(r.URL.Query().Get("doctorId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}
	dayOfWeek := r.URL.Query().Get("dayOfWeek")

	schedules, err := h.scheduleUsecase.GetAvailableSlots(r.Context(), uint(doctorID), dayOfWeek)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", schedules)
}

func (h *ScheduleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	schedules, total, err := h.scheduleUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Schedules retrieved successfully", schedules, meta(page, limit, total))
}

func (h *ScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	schedule, err := h.scheduleUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	if err := h.scheduleUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}

// pathID reads the numeric {id} path variable
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id), err
}

// pagination reads page/limit query params with the usual defaults
func pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func meta(page, limit int, total int64) *response.Meta {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
