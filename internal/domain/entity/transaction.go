package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod values accepted by the cashier
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

// Transaction represents a payment recorded for a patient's visit
type Transaction struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uint            `gorm:"not null;index" json:"patient_id"`
	ServiceID     uint            `gorm:"not null;index" json:"service_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(10);not null" json:"payment_method"`
	DoctorID      uint            `gorm:"not null;index" json:"doctor_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Service Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Doctor  Employee `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
