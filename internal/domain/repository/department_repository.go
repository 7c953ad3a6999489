package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id uint) (*entity.Department, error)
	FindByName(db *gorm.DB, name string) (*entity.Department, error)
	FindByNameExcluding(db *gorm.DB, id uint, name string) (*entity.Department, error)
	FindAll(db *gorm.DB) ([]entity.Department, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Department, int64, error)
	Update(db *gorm.DB, department *entity.Department) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
