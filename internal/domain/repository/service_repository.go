package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uint) (*entity.Service, error)
	FindByName(db *gorm.DB, name string) (*entity.Service, error)
	FindByNameExcluding(db *gorm.DB, id uint, name string) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Service, int64, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
