package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered citizen or administrator
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	GoogleID  string             `bson:"googleId,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest is the payload for Google sign-in
type GoogleAuthRequest struct {
	GoogleIDToken string `json:"googleIdToken" binding:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// PublicProfile is the subset of user fields safe to embed in listings
type PublicProfile struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Avatar   string             `json:"avatar,omitempty"`
}

// ToPublicProfile strips credentials and contact details for display
func (u *User) ToPublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}
