package repository

import (
	"errors"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type employeeRepository struct{}

func NewEmployeeRepository() domainRepo.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(db *gorm.DB, employee *entity.Employee) error {
	return db.Create(employee).Error
}

func (r *employeeRepository) FindByID(db *gorm.DB, id uint) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Preload("User").Preload("Clinic").Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindDoctorByID(db *gorm.DB, id uint) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Preload("User").Preload("Clinic").
		Joins("JOIN users ON users.id = employees.user_id").
		Where("employees.id = ? AND users.role = ?", id, entity.RoleDoctor).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindAll(db *gorm.DB) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := db.Preload("User").Preload("Clinic").Order("id ASC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Employee, int64, error) {
	var total int64
	if err := db.Model(&entity.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []entity.Employee
	err := db.Preload("User").Preload("Clinic").Order("id DESC").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (r *employeeRepository) Update(db *gorm.DB, employee *entity.Employee) error {
	return db.Omit("User", "Clinic").Save(employee).Error
}

func (r *employeeRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Employee{})
	return result.RowsAffected, result.Error
}
