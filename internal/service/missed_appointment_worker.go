package service

import (
	"context"
	"time"

	"clinic-ops-api/config"
	"clinic-ops-api/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const sweepLockKey = "missed_appointment_sweep:lock"

// MissedAppointmentWorker periodically cancels PENDING appointments
// whose visit time has passed. A Redis SETNX lock keeps the sweep to a
// single instance when the API runs replicated.
type MissedAppointmentWorker struct {
	log                *logrus.Logger
	appointmentUsecase usecase.AppointmentUsecase
	redisClient        *redis.Client
	cfg                config.SweepConfig
	cron               *cron.Cron
}

func NewMissedAppointmentWorker(
	log *logrus.Logger,
	appointmentUsecase usecase.AppointmentUsecase,
	redisClient *redis.Client,
	cfg config.SweepConfig,
) *MissedAppointmentWorker {
	return &MissedAppointmentWorker{
		log:                log,
		appointmentUsecase: appointmentUsecase,
		redisClient:        redisClient,
		cfg:                cfg,
	}
}

func (w *MissedAppointmentWorker) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.cfg.CronSpec, w.sweep); err != nil {
		return err
	}
	w.cron.Start()
	w.log.Infof("Missed appointment worker started: spec=%q", w.cfg.CronSpec)
	return nil
}

func (w *MissedAppointmentWorker) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *MissedAppointmentWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	acquired, err := w.redisClient.SetNX(ctx, sweepLockKey, "1", w.cfg.LockTTL).Result()
	if err != nil {
		w.log.Warnf("Failed to acquire sweep lock: %+v", err)
		return
	}
	if !acquired {
		return
	}
	defer w.redisClient.Del(ctx, sweepLockKey)

	cancelled, err := w.appointmentUsecase.CancelMissedAppointments(ctx)
	if err != nil {
		w.log.Errorf("Missed appointment sweep failed: %+v", err)
		return
	}
	if cancelled > 0 {
		w.log.Infof("Missed appointment sweep cancelled %d appointments", cancelled)
	}
}
