package provider

import (
	"context"
	"testing"

	providerRepo "fixly/database/repository/provider"
	userRepo "fixly/database/repository/user"
	"fixly/models"
	"fixly/utils"
)

// ---- in-memory fakes ----

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, providerRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, providerRepo.ErrNotFound
}

func (r *fakeProviderRepo) Search(filter providerRepo.SearchFilter) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		if !p.IsActive {
			continue
		}
		if filter.ServiceID != "" {
			offered := false
			for _, s := range p.Services {
				if s.ServiceID == filter.ServiceID {
					offered = true
					break
				}
			}
			if !offered {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProviderRepo) Create(p *models.Provider) error {
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *fakeProviderRepo) Update(p *models.Provider) error {
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *fakeProviderRepo) UpdateRating(id string, rating float64, totalReviews int) error {
	p, ok := r.providers[id]
	if !ok {
		return providerRepo.ErrNotFound
	}
	p.Rating = rating
	p.TotalReviews = totalReviews
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, userRepo.ErrNotFound }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }

func newService(users map[string]*models.User) (*DefaultProviderService, *fakeProviderRepo) {
	repo := newFakeProviderRepo()
	return &DefaultProviderService{
		Repo:     repo,
		UserRepo: &fakeUserRepo{users: users},
	}, repo
}

// ---- profile upsert ----

func TestUpsertProfileCreatesOnFirstSave(t *testing.T) {
	svc, repo := newService(map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Pete Provider"},
	})

	detail, created, err := svc.UpsertProfile(context.Background(), "user-1", models.ProviderProfileInput{
		Services: []models.ProviderService{{ServiceID: "svc-1", Price: 50}},
		Bio:      "Licensed plumber",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !created {
		t.Fatalf("first save should create")
	}
	if detail.ID == "" || detail.UserID != "user-1" {
		t.Fatalf("profile fields wrong: %+v", detail.Provider)
	}
	if !detail.IsActive {
		t.Fatalf("new profiles start active")
	}
	if detail.User.Name != "Pete Provider" {
		t.Fatalf("owner summary not resolved")
	}
	if len(repo.providers) != 1 {
		t.Fatalf("expected one stored profile")
	}
}

func TestUpsertProfileUpdatesWithoutTouchingAggregate(t *testing.T) {
	svc, repo := newService(map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Pete Provider"},
	})
	repo.providers["prov-1"] = &models.Provider{
		ID: "prov-1", UserID: "user-1", Bio: "Old bio",
		Rating: 4.5, TotalReviews: 12, IsActive: true,
	}

	detail, created, err := svc.UpsertProfile(context.Background(), "user-1", models.ProviderProfileInput{
		Bio: "New bio",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if created {
		t.Fatalf("second save should update, not create")
	}
	if detail.ID != "prov-1" || detail.Bio != "New bio" {
		t.Fatalf("profile not updated: %+v", detail.Provider)
	}
	if detail.Rating != 4.5 || detail.TotalReviews != 12 {
		t.Fatalf("upsert must never touch the rating aggregate, got (%v, %d)",
			detail.Rating, detail.TotalReviews)
	}
}

// ---- lookup ----

func TestGetByIDMissing(t *testing.T) {
	svc, _ := newService(nil)
	_, err := svc.GetByID(context.Background(), "nope")
	se, ok := utils.AsServiceError(err)
	if !ok || se.Code != utils.CodeNotFound {
		t.Fatalf("expected notFound, got %v", err)
	}
}

// ---- search ----

func seedSearchFixture() (*DefaultProviderService, *fakeProviderRepo) {
	svc, repo := newService(map[string]*models.User{
		// Coordinates are stored [longitude, latitude].
		"user-ny": {ID: "user-ny", Name: "Near", Location: &models.Location{Coordinates: []float64{-74.0060, 40.7128}}},
		"user-la": {ID: "user-la", Name: "Far", Location: &models.Location{Coordinates: []float64{-118.2437, 34.0522}}},
		"user-no": {ID: "user-no", Name: "Nowhere"},
	})
	repo.providers["prov-ny"] = &models.Provider{
		ID: "prov-ny", UserID: "user-ny", IsActive: true,
		Services: []models.ProviderService{{ServiceID: "svc-1"}},
	}
	repo.providers["prov-la"] = &models.Provider{
		ID: "prov-la", UserID: "user-la", IsActive: true,
		Services: []models.ProviderService{{ServiceID: "svc-1"}},
	}
	repo.providers["prov-no"] = &models.Provider{
		ID: "prov-no", UserID: "user-no", IsActive: true,
		Services: []models.ProviderService{{ServiceID: "svc-2"}},
	}
	return svc, repo
}

func TestSearchByService(t *testing.T) {
	svc, _ := seedSearchFixture()

	results, err := svc.Search(context.Background(), SearchInput{ServiceID: "svc-2"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "prov-no" {
		t.Fatalf("expected only prov-no, got %d results", len(results))
	}
}

func TestSearchRadiusFiltersByOwnerLocation(t *testing.T) {
	svc, _ := seedSearchFixture()

	lat, lng := 40.7128, -74.0060
	results, err := svc.Search(context.Background(), SearchInput{
		ServiceID: "svc-1", Lat: &lat, Lng: &lng, RadiusMiles: 10,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "prov-ny" {
		t.Fatalf("expected only the nearby provider, got %d results", len(results))
	}
}

func TestSearchGeoFilterSkipsProvidersWithoutLocation(t *testing.T) {
	svc, _ := seedSearchFixture()

	lat, lng := 40.7128, -74.0060
	results, err := svc.Search(context.Background(), SearchInput{Lat: &lat, Lng: &lng, RadiusMiles: 10})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	for _, r := range results {
		if r.ID == "prov-no" {
			t.Fatalf("a provider without a stored location must not match a geo search")
		}
	}
}

func TestSearchWithoutGeoReturnsAll(t *testing.T) {
	svc, _ := seedSearchFixture()

	results, err := svc.Search(context.Background(), SearchInput{ServiceID: "svc-1"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both svc-1 providers, got %d", len(results))
	}
}

func TestDefaultWithinRadius(t *testing.T) {
	// Manhattan to Brooklyn is a few miles; Manhattan to LA is not.
	if !defaultWithinRadius(40.7128, -74.0060, 40.6782, -73.9442, 10) {
		t.Fatalf("Brooklyn should be within 10 miles of Manhattan")
	}
	if defaultWithinRadius(40.7128, -74.0060, 34.0522, -118.2437, 10) {
		t.Fatalf("Los Angeles should not be within 10 miles of Manhattan")
	}
}
