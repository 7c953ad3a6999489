package service

import (
	"context"

	"clinic-ops-api/config"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedService provisions the baseline records the API needs on first
// boot: a director account and a default clinic. Both upserts are keyed
// by natural identifiers so repeated startups are no-ops.
type SeedService struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	clinicRepo repository.ClinicRepository
	cfg        config.SeedConfig
}

func NewSeedService(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	clinicRepo repository.ClinicRepository,
	cfg config.SeedConfig,
) *SeedService {
	return &SeedService{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		clinicRepo: clinicRepo,
		cfg:        cfg,
	}
}

func (s *SeedService) Run(ctx context.Context) error {
	if err := s.seedDirector(ctx); err != nil {
		return err
	}
	return s.seedClinic(ctx)
}

func (s *SeedService) seedDirector(ctx context.Context) error {
	if s.cfg.DirectorUsername == "" || s.cfg.DirectorPassword == "" {
		s.log.Warn("Director seed credentials not configured, skipping")
		return nil
	}

	existing, err := s.userRepo.FindByUsername(s.db.WithContext(ctx), s.cfg.DirectorUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DirectorPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	director := &entity.User{
		Username:    s.cfg.DirectorUsername,
		Password:    string(hashedPassword),
		FullName:    "Clinic Director",
		PhoneNumber: "n/a",
		Address:     "n/a",
		Gender:      entity.GenderMale,
		Role:        entity.RoleDirector,
	}

	if err := s.userRepo.Create(s.db.WithContext(ctx), director); err != nil {
		return err
	}

	s.log.Infof("Seeded director account: username=%s", director.Username)
	return nil
}

func (s *SeedService) seedClinic(ctx context.Context) error {
	existing, err := s.clinicRepo.FindByName(s.db.WithContext(ctx), s.cfg.ClinicName)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	clinic := &entity.Clinic{
		Name:    s.cfg.ClinicName,
		Address: "n/a",
	}

	if err := s.clinicRepo.Create(s.db.WithContext(ctx), clinic); err != nil {
		return err
	}

	s.log.Infof("Seeded default clinic: name=%s", clinic.Name)
	return nil
}
