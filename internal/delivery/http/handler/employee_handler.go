package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/response"
	"clinic-ops-api/pkg/validator"
)

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.Create(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Employee created successfully", employee)
}

func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Employees retrieved successfully", employees)
}

func (h *EmployeeHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	employees, total, err := h.employeeUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Employees retrieved successfully", employees, meta(page, limit, total))
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID")
		return
	}

	employee, err := h.employeeUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Employee retrieved successfully", employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Employee updated successfully", employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee ID")
		return
	}

	if err := h.employeeUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Employee deleted successfully", nil)
}
