package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"fixly/models"
)

func TestNewReminderTaskCarriesPayload(t *testing.T) {
	fireAt := time.Now().Add(2 * time.Hour)
	payload := models.ReminderPayload{
		BookingID: "bkg-1",
		Target:    "user",
		ID:        "cust-1",
		Title:     "Upcoming appointment",
		Body:      "Your booking is coming up.",
		FireDate:  fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		t.Fatalf("task build failed: %v", err)
	}
	if task.Type() != TypeSendReminder {
		t.Fatalf("expected task type %s, got %s", TypeSendReminder, task.Type())
	}
	if len(opts) == 0 {
		t.Fatalf("expected a ProcessAt option")
	}

	var decoded models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("payload should decode: %v", err)
	}
	if decoded != payload {
		t.Fatalf("payload round trip mismatch: %+v", decoded)
	}
}

func TestScheduleSkipsImminentBookings(t *testing.T) {
	// A nil client panics on enqueue; the early return for bookings
	// inside the lead window must fire before any enqueue happens.
	s := &Scheduler{Client: nil, Lead: DefaultReminderLead}

	soon := time.Now().Add(10 * time.Minute)
	b := &models.Booking{
		ID:            "bkg-1",
		CustomerID:    "cust-1",
		ScheduledDate: soon.Format("2006-01-02"),
		ScheduledTime: soon.Format("15:04"),
	}
	if err := s.ScheduleBookingReminders(b); err != nil {
		t.Fatalf("imminent booking should be skipped silently: %v", err)
	}
}

func TestScheduleRejectsUnparseableSchedule(t *testing.T) {
	s := &Scheduler{Client: nil, Lead: DefaultReminderLead}
	b := &models.Booking{ID: "bkg-1", ScheduledDate: "someday", ScheduledTime: "noon"}
	if err := s.ScheduleBookingReminders(b); err == nil {
		t.Fatalf("unparseable schedule should error")
	}
}
