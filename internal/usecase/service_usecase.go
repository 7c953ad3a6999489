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

type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetAll(ctx context.Context) ([]dto.ServiceResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.ServiceResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type serviceUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	serviceRepo    repository.ServiceRepository
	departmentRepo repository.DepartmentRepository
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	departmentRepo repository.DepartmentRepository,
) ServiceUsecase {
	return &serviceUsecase{db: db, log: log, serviceRepo: serviceRepo, departmentRepo: departmentRepo}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	existing, err := u.serviceRepo.FindByName(u.db.WithContext(ctx), req.Name)
	if err != nil {
		u.log.Warnf("Failed service name uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrServiceExists
	}

	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, apperror.ErrDepartmentNotFound
	}

	service := &entity.Service{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DepartmentID: department.ID,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), service); err != nil {
		u.log.Errorf("Failed to create service: %+v", err)
		return nil, err
	}

	service.Department = *department
	u.log.Infof("Service created: id=%d, name=%s, price=%s", service.ID, service.Name, service.Price)
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetAll(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.ServiceResponse, int64, error) {
	services, total, err := u.serviceRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page services: %+v", err)
		return nil, 0, err
	}
	return converter.ServicesToResponses(services), total, nil
}

func (u *serviceUsecase) GetByID(ctx context.Context, id uint) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, apperror.ErrServiceNotFound
	}
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Update(ctx context.Context, id uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, apperror.ErrServiceNotFound
	}

	existing, err := u.serviceRepo.FindByNameExcluding(u.db.WithContext(ctx), id, req.Name)
	if err != nil {
		u.log.Warnf("Failed service name uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrServiceExists
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), service); err != nil {
		u.log.Errorf("Failed to update service %d: %+v", id, err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete service %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrServiceNotFound
	}
	return nil
}
