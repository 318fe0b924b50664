package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "fixly/database/repository/booking"
	providerRepo "fixly/database/repository/provider"
	"fixly/models"
	"fixly/services/notification"
	"fixly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create records a new pending booking. The price is stored as the caller
// sent it; availability and pricing are advisory to this core.
func (s *DefaultBookingService) Create(ctx context.Context, customerID string, input models.CreateBookingInput) (*models.BookingDetail, error) {
	now := time.Now().UTC()
	b := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		ProviderID:    input.Provider,
		ServiceID:     input.Service,
		Status:        models.StatusPending,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Duration:      input.Duration,
		Location:      input.Location,
		Price:         input.Price,
		Description:   input.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, storeErr(err)
	}

	detail := s.expand(b)
	if b.ProviderID != "" {
		notification.Dispatch(s.Notifier, b.ProviderID, notification.EventNewBooking, detail)
	}
	return detail, nil
}

// Transition moves the booking to targetStatus after the actor and the
// transition table both check out.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID, actorID, targetStatus string) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, storeErr(err)
	}

	authorized, err := s.actorRelated(b, actorID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, errNotAuthorized("update")
	}

	if !transitionAllowed(b.Status, targetStatus) {
		return nil, errInvalidTransition()
	}

	return s.applyTransition(b, targetStatus)
}

// Cancel is the shortcut the client uses for plain cancellation. Only
// pending and confirmed bookings can be cancelled this way.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, actorID string) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, storeErr(err)
	}

	authorized, err := s.actorRelated(b, actorID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, errNotAuthorized("cancel")
	}

	if !cancellable(b.Status) {
		return nil, errCannotCancel()
	}

	return s.applyTransition(b, models.StatusCancelled)
}

// actorRelated reports whether the actor is the booking's customer or the
// owner of the booking's provider profile.
func (s *DefaultBookingService) actorRelated(b *models.Booking, actorID string) (bool, error) {
	if b.CustomerID == actorID {
		return true, nil
	}
	prov, err := s.ProviderRepo.GetByUserID(actorID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return false, nil
		}
		return false, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	return b.ProviderID != "" && prov.ID == b.ProviderID, nil
}

// applyTransition persists the status change guarded by the status that was
// read, then re-resolves the booking and notifies both parties.
func (s *DefaultBookingService) applyTransition(b *models.Booking, targetStatus string) (*models.BookingDetail, error) {
	if err := s.Repo.UpdateStatus(b.ID, targetStatus, b.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrStaleStatus) {
			return nil, errConcurrentUpdate()
		}
		return nil, storeErr(err)
	}

	updated, err := s.Repo.GetByID(b.ID)
	if err != nil {
		return nil, storeErr(err)
	}

	detail := s.expand(updated)
	notification.Dispatch(s.Notifier, updated.CustomerID, notification.EventBookingUpdated, detail)
	if updated.ProviderID != "" {
		notification.Dispatch(s.Notifier, updated.ProviderID, notification.EventBookingUpdated, detail)
	}

	if targetStatus == models.StatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminders(updated); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminders",
				zap.String("bookingId", updated.ID), zap.Error(err))
		}
	}
	return detail, nil
}
