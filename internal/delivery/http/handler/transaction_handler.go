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

type TransactionHandler struct {
	transactionUsecase usecase.TransactionUsecase
	validator          *validator.CustomValidator
}

func NewTransactionHandler(transactionUsecase usecase.TransactionUsecase, validator *validator.CustomValidator) *TransactionHandler {
	return &TransactionHandler{
		transactionUsecase: transactionUsecase,
		validator:          validator,
	}
}

// Create records a payment and confirms the matching appointment
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.transactionUsecase.Create(r.Context(), &req)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Transaction created successfully", transaction)
}

func (h *TransactionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionUsecase.GetAll(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Transactions retrieved successfully", transactions)
}

func (h *TransactionHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	transactions, total, err := h.transactionUsecase.GetPage(r.Context(), page, limit)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Transactions retrieved successfully", transactions, meta(page, limit, total))
}

func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	transaction, err := h.transactionUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Transaction retrieved successfully", transaction)
}

func (h *TransactionHandler) GetByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.ParseUint(mux.Vars(r)["patientId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	transactions, err := h.transactionUsecase.GetByPatientID(r.Context(), uint(patientID))
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Transactions retrieved successfully", transactions)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid transaction ID")
		return
	}

	if err := h.transactionUsecase.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Transaction deleted successfully", nil)
}
