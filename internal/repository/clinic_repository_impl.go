package repository

import (
	"errors"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Create(clinic).Error
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uint) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindByName(db *gorm.DB, name string) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("name = ?", name).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindByNameExcluding(db *gorm.DB, id uint, name string) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id != ? AND name = ?", id, name).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindAll(db *gorm.DB) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Order("id ASC").Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Clinic, int64, error) {
	var total int64
	if err := db.Model(&entity.Clinic{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clinics []entity.Clinic
	err := db.Order("id DESC").Limit(limit).Offset(offset).Find(&clinics).Error
	if err != nil {
		return nil, 0, err
	}
	return clinics, total, nil
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Save(clinic).Error
}

func (r *clinicRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Clinic{})
	return result.RowsAffected, result.Error
}
