package booking

import (
	"context"
	"errors"

	providerRepo "fixly/database/repository/provider"
	"fixly/models"
	"fixly/utils"
)

// ListMine resolves the actor's bookings. Providers see the bookings
// assigned to their profile; everyone else sees the bookings they created.
func (s *DefaultBookingService) ListMine(ctx context.Context, actorID, actorRole string) ([]models.BookingDetail, error) {
	var (
		bookings []models.Booking
		err      error
	)

	if actorRole == models.RoleProvider {
		prov, perr := s.ProviderRepo.GetByUserID(actorID)
		if perr != nil {
			if errors.Is(perr, providerRepo.ErrNotFound) {
				// A provider account without a saved profile has no
				// bookings yet; that is not an error.
				return []models.BookingDetail{}, nil
			}
			return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
		}
		bookings, err = s.Repo.ListByProvider(prov.ID)
	} else {
		bookings, err = s.Repo.ListByCustomer(actorID)
	}
	if err != nil {
		return nil, storeErr(err)
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, *s.expand(&bookings[i]))
	}
	return details, nil
}

// GetOne returns one booking regardless of status, provided the actor is
// its customer or its provider's owner.
func (s *DefaultBookingService) GetOne(ctx context.Context, bookingID, actorID string) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, storeErr(err)
	}

	authorized, err := s.actorRelated(b, actorID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, utils.NewServiceError(utils.CodeForbidden, "Access denied")
	}

	return s.expand(b), nil
}
