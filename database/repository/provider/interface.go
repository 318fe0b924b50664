package providerRepo

import (
	"errors"

	"fixly/models"
)

// ErrNotFound is returned when no provider matches the lookup.
var ErrNotFound = errors.New("provider not found")

// SearchFilter narrows a provider search. Zero values mean "any".
type SearchFilter struct {
	ServiceID string
}

// ProviderRepository defines methods for provider profile data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByUserID retrieves the provider profile owned by a user, if any.
	GetByUserID(userID string) (*models.Provider, error)
	// Search retrieves active providers matching the filter.
	Search(filter SearchFilter) ([]models.Provider, error)
	// Create inserts a new provider profile.
	Create(provider *models.Provider) error
	// Update modifies an existing provider profile.
	Update(provider *models.Provider) error
	// UpdateRating sets the derived rating aggregate fields.
	UpdateRating(id string, rating float64, totalReviews int) error
}
