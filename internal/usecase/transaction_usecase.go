package usecase

import (
	"context"

	"clinic-ops-api/internal/converter"
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/domain/repository"
	"clinic-ops-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TransactionUsecase interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	GetAll(ctx context.Context) ([]dto.TransactionResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.TransactionResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.TransactionResponse, error)
	GetByPatientID(ctx context.Context, patientID uint) ([]dto.TransactionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type transactionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	transactionRepo repository.TransactionRepository
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	serviceRepo     repository.ServiceRepository
	employeeRepo    repository.EmployeeRepository
}

func NewTransactionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactionRepo repository.TransactionRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	serviceRepo repository.ServiceRepository,
	employeeRepo repository.EmployeeRepository,
) TransactionUsecase {
	return &transactionUsecase{
		db:              db,
		log:             log,
		transactionRepo: transactionRepo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		serviceRepo:     serviceRepo,
		employeeRepo:    employeeRepo,
	}
}

// Create records a payment and confirms the patient's active appointment
// with the doctor in the same transaction.
func (u *transactionUsecase) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.ErrPatientNotFound
	}

	service, err := u.serviceRepo.FindByID(tx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", req.ServiceID, err)
		return nil, err
	}
	if service == nil {
		return nil, apperror.ErrServiceNotFound
	}

	doctor, err := u.employeeRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	appointment, err := u.appointmentRepo.FindActiveByPatientAndDoctor(tx, patient.ID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find active appointment: patient=%d, doctor=%d: %+v", patient.ID, doctor.ID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.ErrAppointmentNotFound
	}

	appointment.Confirm()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Errorf("Failed to confirm appointment %d: %+v", appointment.ID, err)
		return nil, err
	}

	transaction := &entity.Transaction{
		PatientID:     patient.ID,
		ServiceID:     service.ID,
		Amount:        req.Amount,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		DoctorID:      doctor.ID,
	}

	if err := u.transactionRepo.Create(tx, transaction); err != nil {
		u.log.Errorf("Failed to insert transaction: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Transaction created: id=%d, patient=%d, appointment=%d confirmed, amount=%s",
		transaction.ID, patient.ID, appointment.ID, transaction.Amount)

	transaction.Patient = *patient
	transaction.Service = *service
	transaction.Doctor = *doctor
	return converter.TransactionToResponse(transaction), nil
}

func (u *transactionUsecase) GetAll(ctx context.Context) ([]dto.TransactionResponse, error) {
	transactions, err := u.transactionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list transactions: %+v", err)
		return nil, err
	}
	return converter.TransactionsToResponses(transactions), nil
}

func (u *transactionUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.TransactionResponse, int64, error) {
	transactions, total, err := u.transactionRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page transactions: %+v", err)
		return nil, 0, err
	}
	return converter.TransactionsToResponses(transactions), total, nil
}

func (u *transactionUsecase) GetByID(ctx context.Context, id uint) (*dto.TransactionResponse, error) {
	transaction, err := u.transactionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find transaction %d: %+v", id, err)
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.ErrTransactionNotFound
	}
	return converter.TransactionToResponse(transaction), nil
}

func (u *transactionUsecase) GetByPatientID(ctx context.Context, patientID uint) ([]dto.TransactionResponse, error) {
	transactions, err := u.transactionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list transactions for patient %d: %+v", patientID, err)
		return nil, err
	}
	return converter.TransactionsToResponses(transactions), nil
}

func (u *transactionUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.transactionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete transaction %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrTransactionNotFound
	}
	return nil
}
