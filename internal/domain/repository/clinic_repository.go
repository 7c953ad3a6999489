package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id uint) (*entity.Clinic, error)
	FindByName(db *gorm.DB, name string) (*entity.Clinic, error)
	FindByNameExcluding(db *gorm.DB, id uint, name string) (*entity.Clinic, error)
	FindAll(db *gorm.DB) ([]entity.Clinic, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Clinic, int64, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
