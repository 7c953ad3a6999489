package entity

import (
	"time"

	"gorm.io/gorm"
)

// Employee represents clinic staff (doctors, cashiers, lab technicians)
type Employee struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	ClinicID   uint           `gorm:"not null;index" json:"clinic_id"`
	Experience int            `gorm:"not null" json:"experience"`
	Degree     string         `gorm:"type:varchar(255);not null" json:"degree"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}
