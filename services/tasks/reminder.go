package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"fixly/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// DefaultReminderLead is how long before the appointment the reminder fires.
const DefaultReminderLead = time.Hour

// NewReminderTask wraps a reminder payload as a delayed asynq task.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues appointment reminders for confirmed bookings. It
// implements booking.ReminderScheduler.
type Scheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewScheduler wraps an asynq client with the default lead time.
func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{Client: client, Lead: DefaultReminderLead}
}

// ScheduleBookingReminders queues one reminder per party. Appointments
// already closer than the lead time get no reminder.
func (s *Scheduler) ScheduleBookingReminders(booking *models.Booking) error {
	slot, err := time.ParseInLocation("2006-01-02 15:04", booking.ScheduledDate+" "+booking.ScheduledTime, time.Local)
	if err != nil {
		return fmt.Errorf("booking %s has an unparseable schedule: %w", booking.ID, err)
	}

	fireAt := slot.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	targets := []models.ReminderPayload{{
		BookingID: booking.ID,
		Target:    "user",
		ID:        booking.CustomerID,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("Your booking on %s at %s is coming up.", booking.ScheduledDate, booking.ScheduledTime),
		FireDate:  fireAt.Format(time.RFC3339),
	}}
	if booking.ProviderID != "" {
		targets = append(targets, models.ReminderPayload{
			BookingID: booking.ID,
			Target:    "provider",
			ID:        booking.ProviderID,
			Title:     "Upcoming job",
			Body:      fmt.Sprintf("You have a booking on %s at %s.", booking.ScheduledDate, booking.ScheduledTime),
			FireDate:  fireAt.Format(time.RFC3339),
		})
	}

	for _, payload := range targets {
		task, opts, err := NewReminderTask(payload, fireAt)
		if err != nil {
			return err
		}
		if _, err := s.Client.Enqueue(task, opts...); err != nil {
			return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
		}
	}
	return nil
}
