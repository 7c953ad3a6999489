package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	CreateAll(db *gorm.DB, schedules []*entity.Schedule) error
	FindByID(db *gorm.DB, id uint) (*entity.Schedule, error)
	FindAll(db *gorm.DB) ([]entity.Schedule, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Schedule, int64, error)
	// FindAvailableByDoctorAndDay lists AVAILABLE slots for a doctor on
	// a day of week.
	FindAvailableByDoctorAndDay(db *gorm.DB, doctorID uint, day entity.DayOfWeek) ([]entity.Schedule, error)
	// FindByDoctorAndTime locates the slot whose [start_time, end_time]
	// interval contains the given HH:MM time. Returns nil when no slot
	// matches.
	FindByDoctorAndTime(db *gorm.DB, doctorID uint, day entity.DayOfWeek, timeOfDay string) (*entity.Schedule, error)
	// MarkBooked flips a slot to BOOKED only while it is still
	// AVAILABLE. Rows affected 0 means a concurrent booking won.
	MarkBooked(db *gorm.DB, id uint) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
