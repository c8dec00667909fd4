package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/config"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// AuthService coordinates registration, login and principal resolution.
type AuthService struct {
	users      repository.UserRepository
	staffers   repository.StafferRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	StafferRepo repository.StafferRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		staffers:   deps.StafferRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Position  string
	Section   domain.Section
	Avatar    string
}

// Session is the result of a successful registration or login.
type Session struct {
	User      *domain.User
	Staffer   *domain.Staffer
	Token     string
	ExpiresAt time.Time
}

// Register creates a user and, outside the clients section, the matching staffer.
// The role always follows the section; admins only come from seed data.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if blank(input.Email) || blank(input.Password) {
		return nil, apperrors.NewValidationError("email and password are required", nil)
	}
	if !input.Section.Valid() {
		return nil, apperrors.NewValidationError("unknown section", map[string]any{"section": input.Section})
	}
	role := defaultRole(input.Section)

	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	name := strings.TrimSpace(input.FirstName + " " + input.LastName)

	staffer, err := s.staffers.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		// A directory entry may predate the account; the two are reconciled by email.
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apperrors.MapError(err)
	case input.Section != domain.SectionClients:
		staffer = &domain.Staffer{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Position:  input.Position,
			Section:   input.Section,
			Avatar:    input.Avatar,
		}
		if err := s.staffers.Create(ctx, staffer); err != nil {
			return nil, apperrors.MapError(err)
		}
	default:
		staffer = nil
	}

	user := &domain.User{Email: input.Email, PasswordHash: hash, Role: role, Name: name}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.session(user, staffer)
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	staffer, err := s.stafferFor(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.session(user, staffer)
}

// LoadPrincipal resolves the user behind a token and reconciles the staffer record by
// email.
func (s *AuthService) LoadPrincipal(ctx context.Context, userID string) (*auth.Principal, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewUnauthorized("user not found")
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	staffer, err := s.stafferFor(ctx, user)
	if err != nil {
		return nil, err
	}
	return &auth.Principal{User: user, Staffer: staffer, Viewer: ViewerOf(user, staffer)}, nil
}

// ViewerOf builds the viewer identity for a user and its optional staffer record.
func ViewerOf(user *domain.User, staffer *domain.Staffer) domain.Viewer {
	v := domain.Viewer{UserID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}
	if staffer != nil {
		v.StafferID = staffer.ID
		if v.Name == "" {
			v.Name = staffer.FullName()
		}
	}
	return v
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) session(user *domain.User, staffer *domain.Staffer) (*Session, error) {
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &Session{User: user, Staffer: staffer, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) stafferFor(ctx context.Context, user *domain.User) (*domain.Staffer, error) {
	staffer, err := s.staffers.GetByEmail(ctx, user.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staffer, nil
}

func (s *AuthService) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return apperrors.MapError(err)
	}
	return nil
}

func defaultRole(section domain.Section) domain.Role {
	switch section {
	case domain.SectionClients:
		return domain.RoleClient
	case domain.SectionExecutives:
		return domain.RoleExecutive
	case domain.SectionManagerial:
		return domain.RoleSectionHead
	default:
		return domain.RoleStaffer
	}
}
