package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/api/dto"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/service"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// AuthHandler exposes registration, login and the current account.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Position:  req.Position,
		Section:   domain.Section(req.Section),
		Avatar:    req.Avatar,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, sessionResponse(session))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, sessionResponse(session))
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return data(c, http.StatusOK, dto.MeResponse{
		User:    principal.User,
		Staffer: principal.Staffer,
		Role:    principal.Viewer.Role,
	})
}

func sessionResponse(s *service.Session) fiber.Map {
	return fiber.Map{
		"user":    s.User,
		"staffer": s.Staffer,
		"auth":    dto.AuthResponse{Token: s.Token, ExpiresAt: s.ExpiresAt},
	}
}
