package entity

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the appointment lifecycle state
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Appointment represents a patient's reservation with a doctor for a
// specific date and starting time
type Appointment struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uint           `gorm:"not null;index" json:"patient_id"`
	DoctorID    uint           `gorm:"not null;index" json:"doctor_id"`
	OrderedDate time.Time      `gorm:"type:date;not null" json:"ordered_date"`
	OrderedTime string         `gorm:"type:varchar(5);not null" json:"ordered_time"`
	OrderStatus OrderStatus    `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"order_status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Employee `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.OrderStatus == OrderStatusPending
}

// IsActive checks if the appointment counts for transaction creation
func (a *Appointment) IsActive() bool {
	return a.OrderStatus == OrderStatusPending || a.OrderStatus == OrderStatusConfirmed
}

// Confirm moves the appointment to CONFIRMED
func (a *Appointment) Confirm() {
	a.OrderStatus = OrderStatusConfirmed
}

// Complete moves the appointment to COMPLETED
func (a *Appointment) Complete() {
	a.OrderStatus = OrderStatusCompleted
}

// Cancel moves the appointment to CANCELLED
func (a *Appointment) Cancel() {
	a.OrderStatus = OrderStatusCancelled
}
