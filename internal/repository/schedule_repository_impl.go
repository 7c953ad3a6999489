package repository

import (
	"errors"

	"clinic-ops-api/internal/domain/entity"
	domainRepo "clinic-ops-api/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) CreateAll(db *gorm.DB, schedules []*entity.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return db.Create(schedules).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id uint) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Preload("Doctor.User").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindAll(db *gorm.DB) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Preload("Doctor.User").Order("doctor_id ASC, day_of_week ASC, start_time ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Schedule, int64, error) {
	var total int64
	if err := db.Model(&entity.Schedule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schedules []entity.Schedule
	err := db.Preload("Doctor.User").Order("id DESC").Limit(limit).Offset(offset).Find(&schedules).Error
	if err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

func (r *scheduleRepository) FindAvailableByDoctorAndDay(db *gorm.DB, doctorID uint, day entity.DayOfWeek) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Preload("Doctor.User").
		Where("doctor_id = ? AND day_of_week = ? AND status = ?", doctorID, day, entity.ScheduleStatusAvailable).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByDoctorAndTime(db *gorm.DB, doctorID uint, day entity.DayOfWeek, timeOfDay string) (*entity.Schedule, error) {
	var schedule entity.Schedule
	// start_time and end_time are zero-padded HH:MM strings, so string
	// comparison matches chronological order. The interval is half-open:
	// a time equal to a slot's start belongs to that slot, not the one
	// ending there.
	err := db.Where("doctor_id = ? AND day_of_week = ? AND start_time <= ? AND end_time > ?",
		doctorID, day, timeOfDay, timeOfDay).
		Order("start_time ASC").
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// MarkBooked relies on the conditional status guard so that of two
// concurrent bookings only one observes RowsAffected == 1.
func (r *scheduleRepository) MarkBooked(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Schedule{}).
		Where("id = ? AND status = ?", id, entity.ScheduleStatusAvailable).
		Update("status", entity.ScheduleStatusBooked)
	return result.RowsAffected, result.Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Schedule{})
	return result.RowsAffected, result.Error
}
