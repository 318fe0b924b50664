package models

import "time"

// ProviderService is one service offering on a provider profile.
// One-entry-per-service is not enforced; the profile stores whatever the
// provider saved.
type ProviderService struct {
	ServiceID  string  `bson:"serviceId" json:"serviceId"`
	Price      float64 `bson:"price" json:"price"`
	Experience int     `bson:"experience" json:"experience"`
}

// DayAvailability is one weekday of a provider's advisory schedule. The
// booking core never validates against it.
type DayAvailability struct {
	Start     string `bson:"start" json:"start"`
	End       string `bson:"end" json:"end"`
	Available bool   `bson:"available" json:"available"`
}

// WeeklyAvailability is the per-weekday advisory schedule.
type WeeklyAvailability struct {
	Monday    DayAvailability `bson:"monday" json:"monday"`
	Tuesday   DayAvailability `bson:"tuesday" json:"tuesday"`
	Wednesday DayAvailability `bson:"wednesday" json:"wednesday"`
	Thursday  DayAvailability `bson:"thursday" json:"thursday"`
	Friday    DayAvailability `bson:"friday" json:"friday"`
	Saturday  DayAvailability `bson:"saturday" json:"saturday"`
	Sunday    DayAvailability `bson:"sunday" json:"sunday"`
}

// PortfolioItem is one showcase entry on a provider profile.
type PortfolioItem struct {
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description,omitempty"`
	Image       string    `bson:"image" json:"image,omitempty"`
	Date        time.Time `bson:"date" json:"date"`
}

// Provider is a service professional's public profile. Rating and
// TotalReviews are derived aggregates owned by the review service; nothing
// else may write them.
type Provider struct {
	ID           string             `bson:"id" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	Services     []ProviderService  `bson:"services" json:"services"`
	Bio          string             `bson:"bio" json:"bio,omitempty"`
	Experience   int                `bson:"experience" json:"experience"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalReviews int                `bson:"totalReviews" json:"totalReviews"`
	Availability WeeklyAvailability `bson:"availability" json:"availability"`
	Portfolio    []PortfolioItem    `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProviderDetail is a provider expanded with its owning user's summary.
type ProviderDetail struct {
	Provider `bson:",inline"`
	User     UserSummary `bson:"user" json:"user"`
}

// ProviderProfileInput is the client payload for the profile upsert.
type ProviderProfileInput struct {
	Services     []ProviderService   `json:"services"`
	Bio          string              `json:"bio"`
	Experience   int                 `json:"experience"`
	Availability *WeeklyAvailability `json:"availability"`
	Portfolio    []PortfolioItem     `json:"portfolio"`
}
