package dto

import "time"

// Request DTOs

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=255"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=PATIENT CASHIER DOCTOR DIRECTOR LAB_TECHNICIAN"`
	Gender      string `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

type UpdateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=255"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=PATIENT CASHIER DOCTOR DIRECTOR LAB_TECHNICIAN"`
	Gender      string `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

// Response DTOs

type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Role        string    `json:"role"`
	Gender      string    `json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
