package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Sweep SweepConfig
	Seed  SeedConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SweepConfig drives the missed-appointment worker.
type SweepConfig struct {
	CronSpec string
	LockTTL  time.Duration
}

// SeedConfig holds the director account created on first boot.
type SeedConfig struct {
	DirectorUsername string
	DirectorPassword string
	ClinicName       string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	sweepSpec := viper.GetString("SWEEP_CRON_SPEC")
	if sweepSpec == "" {
		sweepSpec = "*/15 * * * *"
	}

	lockTTL, err := time.ParseDuration(viper.GetString("SWEEP_LOCK_TTL"))
	if err != nil {
		lockTTL = 5 * time.Minute
	}

	seedClinic := viper.GetString("SEED_CLINIC_NAME")
	if seedClinic == "" {
		seedClinic = "Main Clinic"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Sweep: SweepConfig{
			CronSpec: sweepSpec,
			LockTTL:  lockTTL,
		},
		Seed: SeedConfig{
			DirectorUsername: viper.GetString("SEED_DIRECTOR_USERNAME"),
			DirectorPassword: viper.GetString("SEED_DIRECTOR_PASSWORD"),
			ClinicName:       seedClinic,
		},
	}

	return config, nil
}
