package repository

import (
	"errors"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type testResultRepository struct{}

func NewTestResultRepository() domainRepo.TestResultRepository {
	return &testResultRepository{}
}

func (r *testResultRepository) Create(db *gorm.DB, testResult *entity.TestResult) error {
	return db.Create(testResult).Error
}

func (r *testResultRepository) FindByID(db *gorm.DB, id uint) (*entity.TestResult, error) {
	var testResult entity.TestResult
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Where("id = ?", id).First(&testResult).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &testResult, nil
}

func (r *testResultRepository) FindAll(db *gorm.DB) ([]entity.TestResult, error) {
	var testResults []entity.TestResult
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Order("id ASC").Find(&testResults).Error
	if err != nil {
		return nil, err
	}
	return testResults, nil
}

func (r *testResultRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.TestResult, int64, error) {
	var total int64
	if err := db.Model(&entity.TestResult{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var testResults []entity.TestResult
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Order("id DESC").Limit(limit).Offset(offset).Find(&testResults).Error
	if err != nil {
		return nil, 0, err
	}
	return testResults, total, nil
}

func (r *testResultRepository) Update(db *gorm.DB, testResult *entity.TestResult) error {
	return db.Omit("Patient", "Service", "Doctor").Save(testResult).Error
}

func (r *testResultRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TestResult{})
	return result.RowsAffected, result.Error
}
