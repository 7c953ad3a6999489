package entity

import (
	"time"

	"gorm.io/gorm"
)

// TestResult represents a lab result recorded for a patient
type TestResult struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uint           `gorm:"not null;index" json:"patient_id"`
	ServiceID uint           `gorm:"not null;index" json:"service_id"`
	Result    string         `gorm:"type:text;not null" json:"result"`
	DoctorID  uint           `gorm:"not null;index" json:"doctor_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Service Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Doctor  Employee `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (TestResult) TableName() string {
	return "test_results"
}
