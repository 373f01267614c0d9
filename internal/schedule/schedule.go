// Package schedule registers best-effort local reminders for upcoming
// tasks. A reminder is a one-shot timer that hands a notification to the
// OS when it fires; nothing is persisted and failures are only logged.
package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ischedule/internal/models"
)

// ReminderTitle is the notification title for every reminder.
const ReminderTitle = "iSchedule Reminder"

// Notifier delivers a notification to the OS notification service.
type Notifier interface {
	Notify(title, body string) error
}

// Scheduler computes reminder fire times and registers one-shot timers.
type Scheduler struct {
	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
	after    func(time.Duration, func()) // time.AfterFunc unless overridden in tests
}

// New creates a Scheduler backed by the given notifier.
func New(notifier Notifier, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		log:      log,
		now:      time.Now,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// CombineDueInstant overlays the time-of-day of dueTime onto dueDate,
// with seconds truncated to zero.
func CombineDueInstant(dueDate, dueTime time.Time) time.Time {
	return time.Date(
		dueDate.Year(), dueDate.Month(), dueDate.Day(),
		dueTime.Hour(), dueTime.Minute(), 0, 0,
		dueDate.Location(),
	)
}

// FireTime returns when a reminder with the given lead should fire.
// ok is false when the lead is zero or the due instant is too close:
// such reminders are skipped entirely rather than fired immediately.
func FireTime(now, due time.Time, lead time.Duration) (fire time.Time, ok bool) {
	if lead <= 0 {
		return time.Time{}, false
	}
	delta := due.Sub(now)
	if delta < lead {
		return time.Time{}, false
	}
	return now.Add(delta - lead), true
}

// Schedule registers a reminder for a task due at the combination of
// dueDate and dueTime. It is fire-and-forget: the outcome of the OS
// submission is logged and never surfaced to the caller.
func (s *Scheduler) Schedule(taskTitle string, dueDate, dueTime time.Time, alert models.AlertOption) {
	due := CombineDueInstant(dueDate, dueTime)
	now := s.now()

	fire, ok := FireTime(now, due, alert.Lead())
	if !ok {
		s.log.Debug().
			Str("task", taskTitle).
			Str("alert", string(alert)).
			Time("due", due).
			Msg("reminder skipped")
		return
	}

	id := uuid.NewString()
	body := fmt.Sprintf("Upcoming Task: %s on %s at %s",
		taskTitle, due.Format("02/01/2006"), due.Format("15:04"))

	s.after(fire.Sub(now), func() {
		if err := s.notifier.Notify(ReminderTitle, body); err != nil {
			s.log.Error().Err(err).Str("id", id).Msg("error setting up notification")
			return
		}
		s.log.Info().Str("id", id).Str("task", taskTitle).Msg("notification delivered")
	})

	s.log.Info().
		Str("id", id).
		Str("task", taskTitle).
		Time("fire", fire).
		Msg("reminder scheduled")
}
