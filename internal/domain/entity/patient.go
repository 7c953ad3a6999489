package entity

import (
	"time"

	"gorm.io/gorm"
)

// Patient represents a registered clinic patient
type Patient struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	BirthDate time.Time      `gorm:"type:date;not null" json:"birth_date"`
	Address   string         `gorm:"type:varchar(255);not null" json:"address"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
