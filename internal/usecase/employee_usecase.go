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

type EmployeeUsecase interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetAll(ctx context.Context) ([]dto.EmployeeResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type employeeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
	clinicRepo   repository.ClinicRepository
}

func NewEmployeeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	clinicRepo repository.ClinicRepository,
) EmployeeUsecase {
	return &employeeUsecase{
		db:           db,
		log:          log,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		clinicRepo:   clinicRepo,
	}
}

func (u *employeeUsecase) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), req.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", req.ClinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, apperror.ErrClinicNotFound
	}

	employee := &entity.Employee{
		UserID:     user.ID,
		ClinicID:   clinic.ID,
		Experience: req.Experience,
		Degree:     req.Degree,
	}

	if err := u.employeeRepo.Create(u.db.WithContext(ctx), employee); err != nil {
		u.log.Errorf("Failed to create employee: %+v", err)
		return nil, err
	}

	employee.User = *user
	employee.Clinic = *clinic
	u.log.Infof("Employee created: id=%d, user=%d, clinic=%d", employee.ID, user.ID, clinic.ID)
	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) GetAll(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := u.employeeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list employees: %+v", err)
		return nil, err
	}
	return converter.EmployeesToResponses(employees), nil
}

func (u *employeeUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.EmployeeResponse, int64, error) {
	employees, total, err := u.employeeRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page employees: %+v", err)
		return nil, 0, err
	}
	return converter.EmployeesToResponses(employees), total, nil
}

func (u *employeeUsecase) GetByID(ctx context.Context, id uint) (*dto.EmployeeResponse, error) {
	employee, err := u.employeeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", id, err)
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrEmployeeNotFound
	}
	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := u.employeeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", id, err)
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	employee.Experience = req.Experience
	employee.Degree = req.Degree

	if err := u.employeeRepo.Update(u.db.WithContext(ctx), employee); err != nil {
		u.log.Errorf("Failed to update employee %d: %+v", id, err)
		return nil, err
	}

	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.employeeRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete employee %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrEmployeeNotFound
	}
	return nil
}
