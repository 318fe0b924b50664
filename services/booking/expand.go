package booking

import (
	"fixly/models"
	"fixly/utils"

	"go.uber.org/zap"
)

// expand resolves a booking's references into summaries. A reference that
// no longer resolves is left unset rather than failing the whole response,
// matching how stale references behave elsewhere in the API.
func (s *DefaultBookingService) expand(b *models.Booking) *models.BookingDetail {
	detail := &models.BookingDetail{Booking: *b}

	if customer, err := s.UserRepo.GetByID(b.CustomerID); err == nil {
		detail.Customer = customer.Summary()
	} else {
		utils.GetLogger().Debug("booking customer did not resolve",
			zap.String("bookingId", b.ID), zap.Error(err))
	}

	if b.ProviderID != "" {
		if prov, err := s.ProviderRepo.GetByID(b.ProviderID); err == nil {
			pd := &models.ProviderDetail{Provider: *prov}
			if owner, err := s.UserRepo.GetByID(prov.UserID); err == nil {
				pd.User = owner.Summary()
			}
			detail.Provider = pd
		} else {
			utils.GetLogger().Debug("booking provider did not resolve",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	if b.ServiceID != "" {
		if svc, err := s.ServiceRepo.GetByID(b.ServiceID); err == nil {
			summary := svc.Summary()
			detail.Service = &summary
		}
	}

	return detail
}
