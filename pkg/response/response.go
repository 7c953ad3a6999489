package response

import (
	"encoding/json"
	"net/http"

	"clinic-ops-api/pkg/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorBody is the fixed error shape returned for every domain failure
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// DomainError is the single boundary translation for usecase failures:
// any AppError becomes HTTP 400 with its stable {code, message} body,
// anything else is a 500.
func DomainError(w http.ResponseWriter, err error) {
	if appErr, ok := apperror.As(err); ok {
		JSON(w, http.StatusBadRequest, ErrorBody{Code: int(appErr.Code), Message: appErr.Message})
		return
	}
	InternalServerError(w, "")
}

// ValidationError reports per-field validation failures under the
// generic bad-request code.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	}{
		Code:    int(apperror.CodeBadRequest),
		Message: "validation failed",
		Fields:  fields,
	})
}

// BadRequest reports a malformed payload before it reaches the workflow
func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "bad request"
	}
	JSON(w, http.StatusBadRequest, ErrorBody{Code: int(apperror.CodeBadRequest), Message: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	JSON(w, http.StatusUnauthorized, ErrorBody{Code: int(apperror.CodeUserNotAuthenticated), Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	JSON(w, http.StatusForbidden, ErrorBody{Code: int(apperror.CodeUserNotAuthenticated), Message: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	JSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Message: message,
	})
}
