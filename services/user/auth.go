package user

import (
	"context"
	"errors"
	"time"

	userRepo "fixly/database/repository/user"
	"fixly/models"
	"fixly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// Register creates an account. The email must be unused; the role defaults
// to customer.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if _, err := s.Repo.GetByEmail(input.Email); err == nil {
		return nil, utils.NewServiceError(utils.CodeValidation, "User already exists with this email")
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error during registration")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error during registration")
	}

	role := input.Role
	if role != models.RoleProvider && role != models.RoleAdmin {
		role = models.RoleCustomer
	}
	location := input.Location
	if location == nil {
		location = &models.Location{Coordinates: []float64{0, 0}}
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         role,
		Location:     location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error during registration")
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error during registration")
	}
	return &AuthResult{Token: token, User: *u}, nil
}

// Login verifies the credentials. Unknown email and wrong password read
// identically to the caller.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewServiceError(utils.CodeValidation, "Invalid credentials")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error during login")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, utils.NewServiceError(utils.CodeValidation, "Invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error during login")
	}
	return &AuthResult{Token: token, User: *u}, nil
}

// GetByID resolves an account by id.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewServiceError(utils.CodeNotFound, "User not found")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	return u, nil
}

// UpdateProfile applies the supplied fields over the stored account and
// returns the updated user. Registering a device token here is what makes
// push delivery possible for the account.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewServiceError(utils.CodeNotFound, "User not found")
		}
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}

	if input.Name != "" {
		u.Name = input.Name
	}
	if input.Phone != "" {
		u.Phone = input.Phone
	}
	if input.Avatar != "" {
		u.Avatar = input.Avatar
	}
	if input.Location != nil {
		u.Location = input.Location
	}
	if input.FCMToken != "" {
		u.FCMToken = input.FCMToken
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(u); err != nil {
		return nil, utils.NewServiceError(utils.CodeStoreFailure, "Server error")
	}
	return u, nil
}
