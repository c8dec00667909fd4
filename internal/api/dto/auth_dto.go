package dto

import (
	"time"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Position  string `json:"position"`
	Section   string `json:"section" validate:"required,oneof=executives scribes creatives managerial clients"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the caller.
type MeResponse struct {
	User    *domain.User    `json:"user"`
	Staffer *domain.Staffer `json:"staffer,omitempty"`
	Role    domain.Role     `json:"role"`
}
