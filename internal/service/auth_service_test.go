package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/schedule-service/internal/config"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository/memory"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

func newAuthService() (*AuthService, *memory.StafferStore) {
	repos := memory.NewSet()
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5, BcryptCost: 4}}
	return NewAuthService(cfg, AuthDependencies{UserRepo: repos.Users, StafferRepo: repos.Staffers}), repos.Staffers.(*memory.StafferStore)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, staffers := newAuthService()

	session, err := svc.Register(ctx, RegisterInput{
		FirstName: "Sam", LastName: "Scribe", Email: "sam@x.com", Password: "pw", Section: domain.SectionScribes, Position: "Writer",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaffer, session.User.Role)
	require.NotNil(t, session.Staffer)
	assert.Equal(t, domain.SectionScribes, session.Staffer.Section)
	assert.NotEmpty(t, session.Token)
	assert.NotEqual(t, "pw", session.User.PasswordHash)

	_, err = svc.Register(ctx, RegisterInput{Email: "SAM@x.com", Password: "pw", Section: domain.SectionScribes})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))

	_, err = svc.Login(ctx, "sam@x.com", "wrong")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
	_, err = svc.Login(ctx, "nobody@x.com", "pw")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	login, err := svc.Login(ctx, "sam@x.com", "pw")
	require.NoError(t, err)
	claims, err := svc.TokenManager().ParseToken(login.Token)
	require.NoError(t, err)

	principal, err := svc.LoadPrincipal(ctx, claims.Subject)
	require.NoError(t, err)
	assert.Equal(t, session.Staffer.ID, principal.Viewer.StafferID)
	assert.Equal(t, "Sam Scribe", principal.Viewer.Name)
	assert.Equal(t, domain.RoleStaffer, principal.Viewer.Role)

	list, err := staffers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRegisterClientCreatesNoStaffer(t *testing.T) {
	ctx := context.Background()
	svc, staffers := newAuthService()

	session, err := svc.Register(ctx, RegisterInput{FirstName: "Cleo", Email: "cleo@x.com", Password: "pw", Section: domain.SectionClients})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, session.User.Role)
	assert.Nil(t, session.Staffer)

	list, err := staffers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Register(ctx, RegisterInput{Email: "x@x.com", Password: "pw", Section: "interns"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	_, err = svc.LoadPrincipal(ctx, "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestRegisterReusesDirectoryEntry(t *testing.T) {
	ctx := context.Background()
	svc, staffers := newAuthService()
	require.NoError(t, staffers.Create(ctx, &domain.Staffer{ID: "s1", FirstName: "Eve", Email: "eve@x.com", Section: domain.SectionExecutives}))

	session, err := svc.Register(ctx, RegisterInput{FirstName: "Eve", Email: "EVE@x.com", Password: "pw", Section: domain.SectionExecutives})
	require.NoError(t, err)
	require.NotNil(t, session.Staffer)
	assert.Equal(t, "s1", session.Staffer.ID)
	assert.Equal(t, domain.RoleExecutive, session.User.Role)
}
