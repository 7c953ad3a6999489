package handler

import (
	"encoding/json"
	"net/http"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/response"
	"clinic-ops-api/pkg/validator"
)

type TestResultHandler struct {
	testResultUsecase usecase.TestResultUsecase
	validator         *validator.CustomValidator
}

func NewTestResultHandler(testResultUsecase usecase.TestResultUsecase, validator *validator.CustomValidator) *TestResultHandler {
	return &TestResultHandler{
		testResultUsecase: testResultUsecase,
		validator:         validator,
	}
}

func (h *TestResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	testResult, err := h.testResultUsecase.Create(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Test result created successfully", testResult)
}

func (h *TestResultHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	testResults, err := h.testResultUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Test results retrieved successfully", testResults)
}

func (h *TestResultHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	testResults, total, err := h.testResultUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Test results retrieved successfully", testResults, meta(page, limit, total))
}

func (h *TestResultHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid test result ID")
		return
	}

	testResult, err := h.testResultUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Test result retrieved successfully", testResult)
}

func (h *TestResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid test result ID")
		return
	}

	var req dto.UpdateTestResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	testResult, err := h.testResultUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Test result updated successfully", testResult)
}

func (h *TestResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid test result ID")
		return
	}

	if err := h.testResultUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Test result deleted successfully", nil)
}
