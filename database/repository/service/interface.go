package serviceRepo

import (
	"errors"

	"fixly/models"
)

// ErrNotFound is returned when no service matches the lookup.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// ListActive retrieves all active catalog entries.
	ListActive() ([]models.Service, error)
	// ListByCategory retrieves active entries in one category.
	ListByCategory(category string) ([]models.Service, error)
	// Create inserts a new catalog entry.
	Create(service *models.Service) error
}
