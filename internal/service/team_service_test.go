package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/schedule-service/internal/domain"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

func TestTeamMembership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	seedStaffer(t, env, "s1", "s1@x.com", domain.SectionScribes)
	seedStaffer(t, env, "s2", "s2@x.com", domain.SectionCreatives)

	_, err := env.team.AddMember(ctx, clientViewer, "s1")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))
	_, err = env.team.AddMember(ctx, execViewer, "nobody")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	_, err = env.team.AddMember(ctx, execViewer, "s1")
	require.NoError(t, err)
	require.NoError(t, env.repos.Team.Add(ctx, &domain.TeamMember{ExecutiveEmail: "exec@x.com", StafferID: "departed"}))

	team, err := env.team.TeamOf(ctx, execViewer)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "s1", team[0].ID)

	tokens, err := env.team.MemberTokens(ctx, execViewer)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].Contains("S1@X.COM"))
	assert.True(t, tokens[1].Contains("departed"))

	s1, err := env.repos.Staffers.GetByID(ctx, "s1")
	require.NoError(t, err)
	s2, err := env.repos.Staffers.GetByID(ctx, "s2")
	require.NoError(t, err)

	ok, err := env.team.IsTeamMember(ctx, execViewer, *s1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = env.team.IsTeamMember(ctx, execViewer, *s2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExecutiveWithoutEmailHasNoTeam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	require.NoError(t, env.repos.Team.Add(ctx, &domain.TeamMember{ExecutiveEmail: "", StafferID: "s1"}))

	nameless := domain.Viewer{Name: "No Mail", Role: domain.RoleExecutive}
	team, err := env.team.TeamOf(ctx, nameless)
	require.NoError(t, err)
	assert.Empty(t, team)

	tokens, err := env.team.MemberTokens(ctx, nameless)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
