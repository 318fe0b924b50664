package user

import (
	"context"

	userRepo "fixly/database/repository/user"
	"fixly/models"
)

// RegisterInput is the client payload for account creation.
type RegisterInput struct {
	Name     string           `json:"name" binding:"required,min=2"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=6"`
	Phone    string           `json:"phone" binding:"required"`
	Role     string           `json:"role"`
	Location *models.Location `json:"location"`
}

// UpdateProfileInput is the client payload for profile changes. Empty
// fields are left as they are; email, role and credentials are not
// editable here.
type UpdateProfileInput struct {
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Avatar   string           `json:"avatar"`
	Location *models.Location `json:"location"`
	FCMToken string           `json:"fcmToken"`
}

// AuthResult is a signed token plus the account it identifies.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService is the identity provider: account creation, credential
// checks, and actor lookup.
type UserService interface {
	// Register creates an account and signs a token for it.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	// Login verifies credentials and signs a token.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// GetByID resolves an account by id.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// UpdateProfile applies the caller's profile changes, including the
	// FCM device token used for push delivery.
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
