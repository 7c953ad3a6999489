package usecase

import (
	"context"
	"strings"

	"clinic-ops-api/internal/converter"
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/domain/repository"
	"clinic-ops-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.UserResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{db: db, log: log, userRepo: userRepo}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(req.Username) != req.Username {
		return nil, apperror.ErrUsernameInvalid
	}

	existing, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed username uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrUserAlreadyExists
	}

	existing, err = u.userRepo.FindByPhoneNumber(u.db.WithContext(ctx), req.PhoneNumber)
	if err != nil {
		u.log.Warnf("Failed phone uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:    req.Username,
		Password:    string(hashedPassword),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      entity.Gender(req.Gender),
		Role:        entity.Role(req.Role),
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		u.log.Errorf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.Infof("User created: id=%d, username=%s, role=%s", user.ID, user.Username, user.Role)
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.UserResponse, int64, error) {
	users, total, err := u.userRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page users: %+v", err)
		return nil, 0, err
	}
	return converter.UsersToResponses(users), total, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	existing, err := u.userRepo.FindByUsernameExcluding(u.db.WithContext(ctx), id, req.Username)
	if err != nil {
		u.log.Warnf("Failed username uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrUserAlreadyExists
	}

	existing, err = u.userRepo.FindByPhoneNumberExcluding(u.db.WithContext(ctx), id, req.PhoneNumber)
	if err != nil {
		u.log.Warnf("Failed phone uniqueness check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user.Username = req.Username
	user.Password = string(hashedPassword)
	user.FullName = req.FullName
	user.PhoneNumber = req.PhoneNumber
	user.Address = req.Address
	user.Gender = entity.Gender(req.Gender)
	user.Role = entity.Role(req.Role)

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Errorf("Failed to update user %d: %+v", id, err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.userRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete user %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrUserNotFound
	}
	return nil
}
