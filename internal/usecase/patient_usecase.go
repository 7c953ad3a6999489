package usecase

import (
	"context"
	"time"

	"clinic-ops-api/internal/converter"
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/domain/repository"
	"clinic-ops-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context) ([]dto.PatientResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) PatientUsecase {
	return &patientUsecase{db: db, log: log, patientRepo: patientRepo, userRepo: userRepo}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, apperror.ErrBadRequest
	}

	patient := &entity.Patient{
		UserID:    user.ID,
		BirthDate: birthDate,
		Address:   req.Address,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Errorf("Failed to create patient: %+v", err)
		return nil, err
	}

	patient.User = *user
	u.log.Infof("Patient created: id=%d, user=%d", patient.ID, user.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error) {
	patients, total, err := u.patientRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page patients: %+v", err)
		return nil, 0, err
	}
	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.ErrPatientNotFound
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, apperror.ErrBadRequest
	}

	patient.BirthDate = birthDate
	patient.Address = req.Address

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Errorf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.patientRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrPatientNotFound
	}
	return nil
}
