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

type DepartmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetAll(ctx context.Context) ([]dto.DepartmentResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.DepartmentResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
}

func NewDepartmentUsecase(db *gorm.DB, log *logrus.Logger, departmentRepo repository.DepartmentRepository) DepartmentUsecase {
	return &departmentUsecase{db: db, log: log, departmentRepo: departmentRepo}
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	existing, err := u.departmentRepo.FindByName(u.db.WithContext(ctx), req.Name)
	if err != nil {
		u.log.Warnf("Failed department name uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDepartmentExists
	}

	department := &entity.Department{Name: req.Name}

	if err := u.departmentRepo.Create(u.db.WithContext(ctx), department); err != nil {
		u.log.Errorf("Failed to create department: %+v", err)
		return nil, err
	}

	u.log.Infof("Department created: id=%d, name=%s", department.ID, department.Name)
	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) GetAll(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}
	return converter.DepartmentsToResponses(departments), nil
}

func (u *departmentUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.DepartmentResponse, int64, error) {
	departments, total, err := u.departmentRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page departments: %+v", err)
		return nil, 0, err
	}
	return converter.DepartmentsToResponses(departments), total, nil
}

func (u *departmentUsecase) GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", id, err)
		return nil, err
	}
	if department == nil {
		return nil, apperror.ErrDepartmentNotFound
	}
	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", id, err)
		return nil, err
	}
	if department == nil {
		return nil, apperror.ErrDepartmentNotFound
	}

	existing, err := u.departmentRepo.FindByNameExcluding(u.db.WithContext(ctx), id, req.Name)
	if err != nil {
		u.log.Warnf("Failed department name uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDepartmentExists
	}

	department.Name = req.Name

	if err := u.departmentRepo.Update(u.db.WithContext(ctx), department); err != nil {
		u.log.Errorf("Failed to update department %d: %+v", id, err)
		return nil, err
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.departmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete department %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrDepartmentNotFound
	}
	return nil
}
