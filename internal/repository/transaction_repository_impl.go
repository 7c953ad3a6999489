package repository

import (
	"errors"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type transactionRepository struct{}

func NewTransactionRepository() domainRepo.TransactionRepository {
	return &transactionRepository{}
}

func (r *transactionRepository) Create(db *gorm.DB, transaction *entity.Transaction) error {
	return db.Create(transaction).Error
}

func (r *transactionRepository) FindByID(db *gorm.DB, id uint) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Where("id = ?", id).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepository) FindAll(db *gorm.DB) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Order("id ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Transaction, int64, error) {
	var total int64
	if err := db.Model(&entity.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []entity.Transaction
	err := db.Preload("Patient.User").Preload("Service").Preload("Doctor.User").
		Order("id DESC").Limit(limit).Offset(offset).Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (r *transactionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Transaction{})
	return result.RowsAffected, result.Error
}
