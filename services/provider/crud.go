package provider

import (
	"context"
	"errors"
	"time"

	providerRepo "fixly/database/repository/provider"
	"fixly/models"
	"fixly/utils"

	"github.com/google/uuid"
)

// UpsertProfile applies the saved profile fields over the existing profile,
// or creates one on first save. Rating and TotalReviews are never touched
// here; only the review service writes those.
func (s *DefaultProviderService) UpsertProfile(ctx context.Context, userID string, input models.ProviderProfileInput) (*models.ProviderDetail, bool, error) {
	existing, err := s.Repo.GetByUserID(userID)
	if err != nil && !errors.Is(err, providerRepo.ErrNotFound) {
		return nil, false, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	now := time.Now().UTC()
	created := false

	var prov *models.Provider
	if existing != nil {
		prov = existing
		prov.Services = input.Services
		prov.Bio = input.Bio
		prov.Experience = input.Experience
		if input.Availability != nil {
			prov.Availability = *input.Availability
		}
		prov.Portfolio = input.Portfolio
		prov.UpdatedAt = now

		if err := s.Repo.Update(prov); err != nil {
			return nil, false, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
		}
	} else {
		prov = &models.Provider{
			ID:         uuid.New().String(),
			UserID:     userID,
			Services:   input.Services,
			Bio:        input.Bio,
			Experience: input.Experience,
			Portfolio:  input.Portfolio,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if input.Availability != nil {
			prov.Availability = *input.Availability
		}
		if err := s.Repo.Create(prov); err != nil {
			return nil, false, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
		}
		created = true
	}

	return s.expand(prov), created, nil
}

// GetByID returns one provider with its owner expanded.
func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.ProviderDetail, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewServiceError(utils.CodeNotFound, "Provider not found")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	return s.expand(prov), nil
}

// expand attaches the owning user's summary.
func (s *DefaultProviderService) expand(prov *models.Provider) *models.ProviderDetail {
	detail := &models.ProviderDetail{Provider: *prov}
	if owner, err := s.UserRepo.GetByID(prov.UserID); err == nil {
		detail.User = owner.Summary()
	}
	return detail
}
