package repository

import (
	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByPhoneNumber(db *gorm.DB, phoneNumber string) (*entity.User, error)
	FindByUsernameExcluding(db *gorm.DB, id uint, username string) (*entity.User, error)
	FindByPhoneNumberExcluding(db *gorm.DB, id uint, phoneNumber string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.User, int64, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
