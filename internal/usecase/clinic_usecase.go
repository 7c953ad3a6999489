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

type ClinicUsecase interface {
	Create(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	GetAll(ctx context.Context) ([]dto.ClinicResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.ClinicResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.ClinicResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	Delete(ctx context.Context, id uint) error
}

type clinicUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clinicRepo repository.ClinicRepository
}

func NewClinicUsecase(db *gorm.DB, log *logrus.Logger, clinicRepo repository.ClinicRepository) ClinicUsecase {
	return &clinicUsecase{db: db, log: log, clinicRepo: clinicRepo}
}

func (u *clinicUsecase) Create(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	existing, err := u.clinicRepo.FindByName(u.db.WithContext(ctx), req.Name)
	if err != nil {
		u.log.Warnf("Failed clinic name uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrClinicExists
	}

	clinic := &entity.Clinic{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := u.clinicRepo.Create(u.db.WithContext(ctx), clinic); err != nil {
		u.log.Errorf("Failed to create clinic: %+v", err)
		return nil, err
	}

	u.log.Infof("Clinic created: id=%d, name=%s", clinic.ID, clinic.Name)
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetAll(ctx context.Context) ([]dto.ClinicResponse, error) {
	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list clinics: %+v", err)
		return nil, err
	}
	return converter.ClinicsToResponses(clinics), nil
}

func (u *clinicUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.ClinicResponse, int64, error) {
	clinics, total, err := u.clinicRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page clinics: %+v", err)
		return nil, 0, err
	}
	return converter.ClinicsToResponses(clinics), total, nil
}

func (u *clinicUsecase) GetByID(ctx context.Context, id uint) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, apperror.ErrClinicNotFound
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Update(ctx context.Context, id uint, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, apperror.ErrClinicNotFound
	}

	existing, err := u.clinicRepo.FindByNameExcluding(u.db.WithContext(ctx), id, req.Name)
	if err != nil {
		u.log.Warnf("Failed clinic name uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrClinicExists
	}

	clinic.Name = req.Name
	clinic.Address = req.Address

	if err := u.clinicRepo.Update(u.db.WithContext(ctx), clinic); err != nil {
		u.log.Errorf("Failed to update clinic %d: %+v", id, err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.clinicRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete clinic %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrClinicNotFound
	}
	return nil
}
