// Package notifications reacts to domain events with outbound email. It is
// wired to the event dispatcher at startup and never called from request
// handling directly; failures here are logged, not surfaced to mutations.
package notifications

import (
	"context"
	"fmt"

	"payroll-backend/internal/events"
	"payroll-backend/internal/repository"
	"payroll-backend/internal/service"

	"github.com/sirupsen/logrus"
)

// ReminderNotifier emails a user their weekly total whenever one of their
// workschedule details is created
type ReminderNotifier struct {
	userRepo       *repository.UserRepository
	timeDetailRepo *repository.WorkscheduleTimeDetailRepository
	mailer         Mailer
	template       string
	log            *logrus.Entry
}

// NewReminderNotifier creates a reminder notifier
func NewReminderNotifier(
	userRepo *repository.UserRepository,
	timeDetailRepo *repository.WorkscheduleTimeDetailRepository,
	mailer Mailer,
	template string,
) *ReminderNotifier {
	return &ReminderNotifier{
		userRepo:       userRepo,
		timeDetailRepo: timeDetailRepo,
		mailer:         mailer,
		template:       template,
		log:            logrus.WithField("component", "reminder-notifier"),
	}
}

// Register subscribes the notifier to the dispatcher's detail-created topic
func (n *ReminderNotifier) Register(dispatcher *events.Dispatcher) {
	dispatcher.Subscribe(events.TopicWorkscheduleDetailCreated, n.handleDetailCreated)
}

func (n *ReminderNotifier) handleDetailCreated(event interface{}) {
	payload, ok := event.(events.WorkscheduleDetailCreated)
	if !ok {
		n.log.Warnf("unexpected event payload %T", event)
		return
	}

	if err := n.notify(context.Background(), payload); err != nil {
		n.log.WithError(err).WithField("detail_id", payload.DetailID).Error("failed to send weekly reminder")
	}
}

func (n *ReminderNotifier) notify(ctx context.Context, payload events.WorkscheduleDetailCreated) error {
	user, err := n.userRepo.GetByID(payload.UserID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	weekStart, weekEnd := service.WeekBounds(payload.ScheduleDate)
	total, err := n.timeDetailRepo.SumForUserWeek(payload.WorkscheduleID, payload.UserID, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("sum weekly total: %w", err)
	}

	return n.mailer.SendEmail(ctx, &Email{
		ReceiverName:    user.FullName(),
		ReceiverAddress: user.Email,
		Template:        n.template,
		Parameters: map[string]interface{}{
			"week_start":    weekStart.Format("2006-01-02"),
			"week_end":      weekEnd.Format("2006-01-02"),
			"total_seconds": total,
			"total_hours":   fmt.Sprintf("%.2f", float64(total)/3600),
		},
	})
}
