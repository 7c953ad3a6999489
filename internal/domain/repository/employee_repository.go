package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *entity.Employee) error
	FindByID(db *gorm.DB, id uint) (*entity.Employee, error)
	// FindDoctorByID resolves an employee only when the linked user
	// account carries the DOCTOR role.
	FindDoctorByID(db *gorm.DB, id uint) (*entity.Employee, error)
	FindAll(db *gorm.DB) ([]entity.Employee, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Employee, int64, error)
	Update(db *gorm.DB, employee *entity.Employee) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
