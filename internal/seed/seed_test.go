package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository/memory"
)

const fixture = `
staffers:
  - id: s1
    firstName: Sam
    lastName: Scribe
    email: sam@x.com
    section: scribes
users:
  - id: u1
    email: exec@x.com
    name: Eve Exec
    role: executive
    password: secret123
team:
  - executiveEmail: exec@x.com
    stafferId: s1
requests:
  - id: r1
    title: Gala
    date: "2024-06-10"
    status: approved
    clientEmail: client@x.com
availability:
  - date: "2024-06-11"
    available: false
    notes: closed
assignments:
  - id: a1
    requestId: r1
    assignedToEmail: sam@x.com
    section: scribes
    status: pending
    assignedAt: 2024-06-01T10:00:00Z
events:
  - id: ev1
    title: Orientation
    start: 2024-06-05T09:00
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	ctx := context.Background()
	repos := memory.NewSet()
	require.NoError(t, LoadFile(ctx, path, repos, bcrypt.MinCost, zap.NewNop()))

	user, err := repos.Users.GetByEmail(ctx, "EXEC@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleExecutive, user.Role)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "secret123"))

	members, err := repos.Team.MembersOf(ctx, "exec@x.com")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "s1", members[0].StafferID)

	a, err := repos.Assignments.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, a.RequestID)
	assert.Equal(t, "r1", *a.RequestID)
	assert.Equal(t, domain.AssignmentStatusPending, a.Status)

	record, err := repos.Availability.Get(ctx, "2024-06-11")
	require.NoError(t, err)
	assert.False(t, record.Available)

	events, err := repos.Events.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2024-06-05", events[0].Date())
}

func TestApplyRejectsUnknownRole(t *testing.T) {
	f, err := Parse([]byte("users:\n  - email: x@x.com\n    role: wizard\n"))
	require.NoError(t, err)
	err = f.Apply(context.Background(), memory.NewSet(), bcrypt.MinCost)
	assert.ErrorContains(t, err, "unknown role")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("staffers: ["))
	assert.Error(t, err)
}
