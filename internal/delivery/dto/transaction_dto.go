package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateTransactionRequest struct {
	PatientID     uint            `json:"patient_id" validate:"required"`
	ServiceID     uint            `json:"service_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=CASH CARD"`
	DoctorID      uint            `json:"doctor_id" validate:"required"`
}

// Response DTOs

type TransactionResponse struct {
	ID            uint            `json:"id"`
	PatientName   string          `json:"patient_name"`
	ServiceName   string          `json:"service_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	DoctorName    string          `json:"doctor_name"`
}
