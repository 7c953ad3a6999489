package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/response"
	"clinic-ops-api/pkg/validator"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.Create(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *DepartmentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	departments, total, err := h.departmentUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Departments retrieved successfully", departments, meta(page, limit, total))
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	department, err := h.departmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.departmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", department)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid department ID")
		return
	}

	if err := h.departmentUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Department deleted successfully", nil)
}
