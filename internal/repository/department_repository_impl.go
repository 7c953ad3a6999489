package repository

import (
	"errors"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Create(department).Error
}

func (r *departmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByName(db *gorm.DB, name string) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("name = ?", name).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByNameExcluding(db *gorm.DB, id uint, name string) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id != ? AND name = ?", id, name).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Order("id ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Department, int64, error) {
	var total int64
	if err := db.Model(&entity.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var departments []entity.Department
	err := db.Order("id DESC").Limit(limit).Offset(offset).Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

func (r *departmentRepository) Update(db *gorm.DB, department *entity.Department) error {
	return db.Save(department).Error
}

func (r *departmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Department{})
	return result.RowsAffected, result.Error
}
