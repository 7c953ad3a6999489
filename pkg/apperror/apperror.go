package apperror

import "errors"

// Code is the stable integer identifier returned to clients for each
// domain failure kind.
type Code int

const (
	CodeTokenNotFound            Code = 0
	CodeUserAlreadyExists        Code = 100
	CodeUserNotFound             Code = 101
	CodeUsernameInvalid          Code = 102
	CodeUserNotAuthenticated     Code = 103
	CodeEmployeeNotFound         Code = 200
	CodeEmployeeAlreadyExists    Code = 201
	CodePatientNotFound          Code = 300
	CodePatientAlreadyExists     Code = 301
	CodeDepartmentNotFound       Code = 400
	CodeDepartmentAlreadyExists  Code = 401
	CodeScheduleNotFound         Code = 500
	CodeScheduleAlreadyExists    Code = 501
	CodeSlotNotAvailable         Code = 77
	CodeSlotAlreadyBooked        Code = 78
	CodeAppointmentNotFound      Code = 502
	CodeAppointmentAlreadyExists Code = 503
	CodeDateMismatch             Code = 504
	CodeClinicNotFound           Code = 600
	CodeClinicAlreadyExists      Code = 601
	CodeTestResultNotFound       Code = 700
	CodeTestResultAlreadyExists  Code = 701
	CodeTransactionNotFound      Code = 800
	CodeTransactionAlreadyExists Code = 801
	CodeServiceNotFound          Code = 900
	CodeServiceAlreadyExists     Code = 901
	CodeBadRequest               Code = 777
)

// AppError is a client-visible domain failure. All AppErrors surface as
// HTTP 400 with a {code, message} body.
type AppError struct {
	Code    Code
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates a domain error with a stable code
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Sentinel domain errors shared by the usecase layer. Handlers never
// inspect these directly; the HTTP boundary translates any AppError into
// the fixed error body.
var (
	ErrUserAlreadyExists    = New(CodeUserAlreadyExists, "user already exists")
	ErrUserNotFound         = New(CodeUserNotFound, "user not found")
	ErrUsernameInvalid      = New(CodeUsernameInvalid, "username is invalid")
	ErrUserNotAuthenticated = New(CodeUserNotAuthenticated, "user is not authenticated")
	ErrEmployeeNotFound     = New(CodeEmployeeNotFound, "employee not found")
	ErrPatientNotFound      = New(CodePatientNotFound, "patient not found")
	ErrDepartmentNotFound   = New(CodeDepartmentNotFound, "department not found")
	ErrDepartmentExists     = New(CodeDepartmentAlreadyExists, "department already exists")
	ErrScheduleNotFound     = New(CodeScheduleNotFound, "schedule not found")
	ErrSlotNotAvailable     = New(CodeSlotNotAvailable, "slot is not available")
	ErrSlotAlreadyBooked    = New(CodeSlotAlreadyBooked, "slot is already booked")
	ErrAppointmentNotFound  = New(CodeAppointmentNotFound, "appointment not found")
	ErrDateMismatch         = New(CodeDateMismatch, "requested date does not match the slot date")
	ErrClinicNotFound       = New(CodeClinicNotFound, "clinic not found")
	ErrClinicExists         = New(CodeClinicAlreadyExists, "clinic already exists")
	ErrTestResultNotFound   = New(CodeTestResultNotFound, "test result not found")
	ErrTransactionNotFound  = New(CodeTransactionNotFound, "transaction not found")
	ErrServiceNotFound      = New(CodeServiceNotFound, "service not found")
	ErrServiceExists        = New(CodeServiceAlreadyExists, "service already exists")
	ErrBadRequest           = New(CodeBadRequest, "bad request")
)

// As unwraps err into an *AppError when it is a domain failure
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
