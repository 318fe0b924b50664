package provider

import (
	"context"

	providerRepo "fixly/database/repository/provider"
	userRepo "fixly/database/repository/user"
	"fixly/models"
)

// SearchInput narrows a provider search. Lat/Lng nil means no geo filter.
type SearchInput struct {
	ServiceID   string
	Lat, Lng    *float64
	RadiusMiles float64
}

// DistancePredicate reports whether a point lies within radiusMiles of the
// search origin. It is pluggable; the default is the same naive
// great-circle check the clients expect.
type DistancePredicate func(originLat, originLng, lat, lng, radiusMiles float64) bool

// ProviderService manages provider profiles and discovery.
type ProviderService interface {
	// UpsertProfile saves the caller's provider profile, creating it on
	// first save. The returned flag is true when a profile was created.
	UpsertProfile(ctx context.Context, userID string, input models.ProviderProfileInput) (*models.ProviderDetail, bool, error)
	// GetByID returns one provider expanded with its owner summary.
	GetByID(ctx context.Context, id string) (*models.ProviderDetail, error)
	// Search returns active providers matching the filter.
	Search(ctx context.Context, input SearchInput) ([]models.ProviderDetail, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo         providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
	WithinRadius DistancePredicate // nil selects the default predicate
}
