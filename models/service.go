package models

import "time"

// ServiceCategories enumerates the accepted catalog categories.
var ServiceCategories = []string{
	"electrical", "plumbing", "tutoring", "cleaning", "repair", "maintenance", "other",
}

// Service is one entry of the service catalog.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Icon        string    `bson:"icon" json:"icon,omitempty"`
	BasePrice   float64   `bson:"basePrice" json:"basePrice"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSummary is the reduced shape embedded in expanded bookings.
type ServiceSummary struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`
}

// Summary strips a Service down to the embedded shape.
func (s *Service) Summary() ServiceSummary {
	return ServiceSummary{ID: s.ID, Name: s.Name, Category: s.Category}
}

// ValidCategory reports whether c is a recognised catalog category.
func ValidCategory(c string) bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}
