package provider

import (
	"context"
	"math"

	providerRepo "fixly/database/repository/provider"
	"fixly/models"
	"fixly/utils"
)

const earthRadiusMiles = 3963.2

// defaultWithinRadius is the naive great-circle membership check. Geo
// refinement is deliberately out of scope; this matches what the clients
// already filter by.
func defaultWithinRadius(originLat, originLng, lat, lng, radiusMiles float64) bool {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	central := math.Acos(
		math.Sin(toRad(originLat))*math.Sin(toRad(lat)) +
			math.Cos(toRad(originLat))*math.Cos(toRad(lat))*math.Cos(toRad(originLng-lng)))
	return central <= radiusMiles/earthRadiusMiles
}

// Search filters active providers by offered service and, when an origin is
// given, by the radius predicate evaluated against the owner's stored
// location.
func (s *DefaultProviderService) Search(ctx context.Context, input SearchInput) ([]models.ProviderDetail, error) {
	providers, err := s.Repo.Search(providerRepo.SearchFilter{ServiceID: input.ServiceID})
	if err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	within := s.WithinRadius
	if within == nil {
		within = defaultWithinRadius
	}
	radius := input.RadiusMiles
	if radius <= 0 {
		radius = 10
	}

	results := make([]models.ProviderDetail, 0, len(providers))
	for i := range providers {
		detail := s.expand(&providers[i])
		if input.Lat != nil && input.Lng != nil {
			loc := detail.User.Location
			if loc == nil || len(loc.Coordinates) != 2 {
				continue
			}
			// Stored coordinates are [longitude, latitude].
			if !within(*input.Lat, *input.Lng, loc.Coordinates[1], loc.Coordinates[0], radius) {
				continue
			}
		}
		results = append(results, *detail)
	}
	return results, nil
}
