package repository

import (
	"errors"
	"time"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Order("id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Appointment, int64, error) {
	var total int64
	if err := db.Model(&entity.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Order("id DESC").Limit(limit).Offset(offset).Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) FindPendingDueBy(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("ordered_date <= ? AND order_status = ?", date, entity.OrderStatusPending).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByPatientAndDoctor(db *gorm.DB, patientID, doctorID uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("patient_id = ? AND doctor_id = ? AND order_status IN ?",
		patientID, doctorID, []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusConfirmed}).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
