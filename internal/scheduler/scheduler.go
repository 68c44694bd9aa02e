// Package scheduler runs the daily workschedule status transitions. Jobs are
// named functions taking an explicit now so they can be invoked and tested
// outside the ticker loop.
package scheduler

import (
	"context"
	"time"

	"payroll-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// Scheduler owns the periodic open/close jobs
type Scheduler struct {
	workschedules *repository.WorkscheduleRepository
	cfg           *Config
	log           *logrus.Entry

	lastOpenRun  string // date of the last open run, "2006-01-02"
	lastCloseRun string
}

// New creates a scheduler
func New(workschedules *repository.WorkscheduleRepository, cfg *Config) *Scheduler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scheduler{
		workschedules: workschedules,
		cfg:           cfg,
		log:           logrus.WithField("component", "scheduler"),
	}
}

// OpenDueWorkschedules transitions every workschedule starting today to Open.
// Idempotent: the predicate excludes rows already Open, so a rerun on the
// same day is a no-op.
func (s *Scheduler) OpenDueWorkschedules(now time.Time) (int64, error) {
	opened, err := s.workschedules.OpenDue(now)
	if err != nil {
		return 0, err
	}
	if opened > 0 {
		s.log.Infof("opened %d workschedules", opened)
	}
	return opened, nil
}

// CloseDueWorkschedules transitions every workschedule ending today to Closed
func (s *Scheduler) CloseDueWorkschedules(now time.Time) (int64, error) {
	closed, err := s.workschedules.CloseDue(now)
	if err != nil {
		return 0, err
	}
	if closed > 0 {
		s.log.Infof("closed %d workschedules", closed)
	}
	return closed, nil
}

// Start launches the ticker loop. Each job fires once per day at its
// configured wall-clock time. Failures are logged and left for the next run;
// the predicates re-check state so nothing is transitioned twice.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	s.log.Infof("scheduler started (open at %s, close at %s)", s.cfg.OpenAt, s.cfg.CloseAt)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	day := now.Format("2006-01-02")

	if s.lastOpenRun != day && reached(now, s.cfg.openHour, s.cfg.openMinute) {
		s.lastOpenRun = day
		if _, err := s.OpenDueWorkschedules(now); err != nil {
			s.log.WithError(err).Error("open transition failed")
		}
	}

	if s.lastCloseRun != day && reached(now, s.cfg.closeHour, s.cfg.closeMinute) {
		s.lastCloseRun = day
		if _, err := s.CloseDueWorkschedules(now); err != nil {
			s.log.WithError(err).Error("close transition failed")
		}
	}
}

// reached reports whether now is at or past the given wall-clock time
func reached(now time.Time, hour, minute int) bool {
	return now.Hour() > hour || (now.Hour() == hour && now.Minute() >= minute)
}
