package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Patient, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
