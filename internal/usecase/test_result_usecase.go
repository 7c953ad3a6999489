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

type TestResultUsecase interface {
	Create(ctx context.Context, req *dto.CreateTestResultRequest) (*dto.TestResultResponse, error)
	GetAll(ctx context.Context) ([]dto.TestResultResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.TestResultResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.TestResultResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTestResultRequest) (*dto.TestResultResponse, error)
	Delete(ctx context.Context, id uint) error
}

type testResultUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	testResultRepo repository.TestResultRepository
	patientRepo    repository.PatientRepository
	serviceRepo    repository.ServiceRepository
	employeeRepo   repository.EmployeeRepository
}

func NewTestResultUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	testResultRepo repository.TestResultRepository,
	patientRepo repository.PatientRepository,
	serviceRepo repository.ServiceRepository,
	employeeRepo repository.EmployeeRepository,
) TestResultUsecase {
	return &testResultUsecase{
		db:             db,
		log:            log,
		testResultRepo: testResultRepo,
		patientRepo:    patientRepo,
		serviceRepo:    serviceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (u *testResultUsecase) Create(ctx context.Context, req *dto.CreateTestResultRequest) (*dto.TestResultResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.ErrPatientNotFound
	}

	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", req.ServiceID, err)
		return nil, err
	}
	if service == nil {
		return nil, apperror.ErrServiceNotFound
	}

	doctor, err := u.employeeRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	testResult := &entity.TestResult{
		PatientID: patient.ID,
		ServiceID: service.ID,
		Result:    req.Result,
		DoctorID:  doctor.ID,
	}

	if err := u.testResultRepo.Create(u.db.WithContext(ctx), testResult); err != nil {
		u.log.Errorf("Failed to create test result: %+v", err)
		return nil, err
	}

	testResult.Patient = *patient
	testResult.Service = *service
	testResult.Doctor = *doctor
	u.log.Infof("Test result created: id=%d, patient=%d", testResult.ID, patient.ID)
	return converter.TestResultToResponse(testResult), nil
}

func (u *testResultUsecase) GetAll(ctx context.Context) ([]dto.TestResultResponse, error) {
	testResults, err := u.testResultRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list test results: %+v", err)
		return nil, err
	}
	return converter.TestResultsToResponses(testResults), nil
}

func (u *testResultUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.TestResultResponse, int64, error) {
	testResults, total, err := u.testResultRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page test results: %+v", err)
		return nil, 0, err
	}
	return converter.TestResultsToResponses(testResults), total, nil
}

func (u *testResultUsecase) GetByID(ctx context.Context, id uint) (*dto.TestResultResponse, error) {
	testResult, err := u.testResultRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find test result %d: %+v", id, err)
		return nil, err
	}
	if testResult == nil {
		return nil, apperror.ErrTestResultNotFound
	}
	return converter.TestResultToResponse(testResult), nil
}

func (u *testResultUsecase) Update(ctx context.Context, id uint, req *dto.UpdateTestResultRequest) (*dto.TestResultResponse, error) {
	testResult, err := u.testResultRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find test result %d: %+v", id, err)
		return nil, err
	}
	if testResult == nil {
		return nil, apperror.ErrTestResultNotFound
	}

	testResult.Result = req.Result

	if err := u.testResultRepo.Update(u.db.WithContext(ctx), testResult); err != nil {
		u.log.Errorf("Failed to update test result %d: %+v", id, err)
		return nil, err
	}

	return converter.TestResultToResponse(testResult), nil
}

func (u *testResultUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.testResultRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete test result %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrTestResultNotFound
	}
	return nil
}
