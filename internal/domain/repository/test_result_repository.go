package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TestResultRepository interface {
	Create(db *gorm.DB, testResult *entity.TestResult) error
	FindByID(db *gorm.DB, id uint) (*entity.TestResult, error)
	FindAll(db *gorm.DB) ([]entity.TestResult, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.TestResult, int64, error)
	Update(db *gorm.DB, testResult *entity.TestResult) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
