package entity

import (
	"time"

	"gorm.io/gorm"
)

// Gender values stored on users
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Role represents the clinic role attached to a user account
type Role string

const (
	RolePatient       Role = "PATIENT"
	RoleCashier       Role = "CASHIER"
	RoleDoctor        Role = "DOCTOR"
	RoleDirector      Role = "DIRECTOR"
	RoleLabTechnician Role = "LAB_TECHNICIAN"
)

// User represents the centralized account table
type User struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password    string         `gorm:"type:text;not null" json:"-"`
	FullName    string         `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"phone_number"`
	Address     string         `gorm:"type:varchar(255);not null" json:"address"`
	Gender      Gender         `gorm:"type:varchar(10);not null" json:"gender"`
	Role        Role           `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor checks if the account belongs to a doctor
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
