package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateServiceRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	DepartmentID uint            `json:"department_id" validate:"required"`
}

type UpdateServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// Response DTOs

type ServiceResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	DepartmentName string          `json:"department_name"`
}
