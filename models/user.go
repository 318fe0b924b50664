package models

import "time"

// Roles recognised by the auth layer.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User is an account holder: a customer, a provider's owner, or an admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"` // accepted on register/login only
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone,omitempty"`
	Avatar       string    `bson:"avatar" json:"avatar,omitempty"`
	Role         string    `bson:"role" json:"role"`
	Location     *Location `bson:"location,omitempty" json:"location,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the reduced user shape embedded in expanded entities.
type UserSummary struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Email    string    `bson:"email" json:"email,omitempty"`
	Phone    string    `bson:"phone" json:"phone,omitempty"`
	Avatar   string    `bson:"avatar" json:"avatar,omitempty"`
	Location *Location `bson:"location,omitempty" json:"location,omitempty"`
}

// Summary strips a User down to the fields shared with other parties.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
		Location: u.Location,
	}
}
