package user

import (
	"context"
	"testing"

	userRepo "fixly/database/repository/user"
	"fixly/models"
	"fixly/utils"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func assertValidation(t *testing.T, err error, message string) {
	t.Helper()
	se, ok := utils.AsServiceError(err)
	if !ok {
		t.Fatalf("expected a service error, got %v", err)
	}
	if se.Code != utils.CodeValidation || se.Message != message {
		t.Fatalf("expected validation %q, got %s: %s", message, se.Code, se.Message)
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.User.Role != models.RoleCustomer {
		t.Fatalf("role should default to customer, got %s", result.User.Role)
	}
	if result.User.PasswordHash == "" || result.User.PasswordHash == "secret1" {
		t.Fatalf("password must be stored hashed")
	}
	if result.Token == "" {
		t.Fatalf("register should return a signed token")
	}

	sub, role, err := utils.ExtractIdentityFromToken(result.Token)
	if err != nil {
		t.Fatalf("token should validate: %v", err)
	}
	if sub != result.User.ID || role != models.RoleCustomer {
		t.Fatalf("token identity mismatch: sub=%s role=%s", sub, role)
	}
}

func TestRegisterProviderRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register(context.Background(), RegisterInput{
		Name: "Pete", Email: "pete@example.com", Password: "secret1", Phone: "555-0102",
		Role: models.RoleProvider,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.User.Role != models.RoleProvider {
		t.Fatalf("provider role should be kept, got %s", result.User.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	input := RegisterInput{Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	assertValidation(t, err, "User already exists with this email")
}

func TestLoginRoundTrip(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carla@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" || result.User.Email != "carla@example.com" {
		t.Fatalf("login result incomplete: %+v", result)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown email and wrong password must read identically.
	_, err := svc.Login(context.Background(), "nobody@example.com", "secret1")
	assertValidation(t, err, "Invalid credentials")

	_, err = svc.Login(context.Background(), "carla@example.com", "wrong")
	assertValidation(t, err, "Invalid credentials")
}

func TestGetByIDResolvesAccount(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.GetByID(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if u.Email != "carla@example.com" {
		t.Fatalf("wrong account resolved: %+v", u)
	}

	_, err = svc.GetByID(context.Background(), "nope")
	se, ok := utils.AsServiceError(err)
	if !ok || se.Code != utils.CodeNotFound {
		t.Fatalf("expected notFound for unknown id, got %v", err)
	}
}

func TestUpdateProfileRegistersDeviceToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	result, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.UpdateProfile(context.Background(), result.User.ID, UpdateProfileInput{
		Phone:    "555-0199",
		Avatar:   "https://cdn.example.com/carla.png",
		Location: &models.Location{Address: "12 Main St", Coordinates: []float64{-74.0060, 40.7128}},
		FCMToken: "device-token-1",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if u.Phone != "555-0199" || u.Avatar != "https://cdn.example.com/carla.png" {
		t.Fatalf("profile fields not applied: %+v", u)
	}
	if u.FCMToken != "device-token-1" {
		t.Fatalf("device token not registered, got %q", u.FCMToken)
	}

	// Stored copy matches, so a later token lookup finds the device.
	stored, _ := repo.GetByID(result.User.ID)
	if stored.FCMToken != "device-token-1" {
		t.Fatalf("device token not persisted, got %q", stored.FCMToken)
	}
	// Identity and credentials stay untouched.
	if stored.Name != "Carla" || stored.Email != "carla@example.com" || stored.Role != models.RoleCustomer {
		t.Fatalf("identity fields must not change: %+v", stored)
	}
	if stored.PasswordHash != result.User.PasswordHash {
		t.Fatalf("credentials must not change")
	}
}

func TestUpdateProfileSkipsEmptyFields(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	result, err := svc.Register(context.Background(), RegisterInput{
		Name: "Carla", Email: "carla@example.com", Password: "secret1", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.UpdateProfile(context.Background(), result.User.ID, UpdateProfileInput{
		Name: "Carla M.",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if u.Name != "Carla M." {
		t.Fatalf("name not applied, got %q", u.Name)
	}
	if u.Phone != "555-0101" {
		t.Fatalf("empty input must not clear existing fields, phone=%q", u.Phone)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.UpdateProfile(context.Background(), "nope", UpdateProfileInput{Name: "Ghost"})
	se, ok := utils.AsServiceError(err)
	if !ok || se.Code != utils.CodeNotFound {
		t.Fatalf("expected notFound, got %v", err)
	}
}
