package entity

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleStatus represents the reservation state of a slot
type ScheduleStatus string

const (
	ScheduleStatusAvailable ScheduleStatus = "AVAILABLE"
	ScheduleStatusBooked    ScheduleStatus = "BOOKED"
)

// DayOfWeek is the working day a slot belongs to, stored alongside the
// concrete date for fast lookups
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var weekdayNames = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// DayOfWeekFromTime maps a calendar date to its DayOfWeek value
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	return weekdayNames[t.Weekday()]
}

// IsValid checks that the value is one of the seven known days
func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Schedule represents one bookable 15-minute slot for a doctor.
// Times are stored as zero-padded HH:MM strings so lexicographic
// comparison matches chronological order in SQL.
type Schedule struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uint           `gorm:"not null;index" json:"doctor_id"`
	DayOfWeek DayOfWeek      `gorm:"type:varchar(10);not null;index" json:"day_of_week"`
	StartTime string         `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string         `gorm:"type:varchar(5);not null" json:"end_time"`
	Status    ScheduleStatus `gorm:"type:varchar(10);not null;default:'AVAILABLE'" json:"status"`
	Date      time.Time      `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Doctor Employee `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// IsAvailable checks if the slot can still be reserved
func (s *Schedule) IsAvailable() bool {
	return s.Status == ScheduleStatusAvailable
}
