package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/response"
	"clinic-ops-api/pkg/validator"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
	validator     *validator.CustomValidator
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase, validator *validator.CustomValidator) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
		validator:     validator,
	}
}

func (h *ClinicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.Create(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

func (h *ClinicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	clinics, total, err := h.clinicUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Clinics retrieved successfully", clinics, meta(page, limit, total))
}

func (h *ClinicHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	clinic, err := h.clinicUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

func (h *ClinicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	var req dto.UpdateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", clinic)
}

func (h *ClinicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	if err := h.clinicUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic deleted successfully", nil)
}
