package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(db *gorm.DB, transaction *entity.Transaction) error
	FindByID(db *gorm.DB, id uint) (*entity.Transaction, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Transaction, error)
	FindAll(db *gorm.DB) ([]entity.Transaction, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Transaction, int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
