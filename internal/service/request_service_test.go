package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

func TestCanRequest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.availability.SetAvailability(ctx, adminViewer, "2024-06-01", false, "")
	require.NoError(t, err)

	open, err := env.availability.CanRequest(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.False(t, open)

	open, err = env.availability.CanRequest(ctx, "2024-06-02")
	require.NoError(t, err)
	assert.True(t, open)

	_, err = env.availability.SetAvailability(ctx, adminViewer, "2024-06-02", true, "extra staff")
	require.NoError(t, err)
	open, err = env.availability.CanRequest(ctx, "2024-06-02")
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, env.availability.DeleteAvailability(ctx, adminViewer, "2024-06-01"))
	open, err = env.availability.CanRequest(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = env.availability.CanRequest(ctx, "June 1st")
	require.NoError(t, err)
	assert.True(t, open, "dates without a record are open whatever their format")
}

func TestAvailabilityRequiresRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.availability.SetAvailability(ctx, clientViewer, "2024-06-01", false, "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))
	_, err = env.availability.SetAvailability(ctx, domain.Viewer{}, "2024-06-01", false, "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
	assert.True(t, apperrors.HasCode(env.availability.DeleteAvailability(ctx, execViewer, "2024-06-05"), apperrors.CodeNotFound))
	assert.Empty(t, env.changes.topics())
}

func TestBlockedDateRefusesNewRequestsOnly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	existing, err := env.requests.Create(ctx, clientViewer, RequestInput{Title: "Shoot", Date: "2024-06-01"})
	require.NoError(t, err)

	_, err = env.availability.SetAvailability(ctx, execViewer, "2024-06-01", false, "holiday")
	require.NoError(t, err)

	_, err = env.requests.Create(ctx, clientViewer, RequestInput{Title: "Another", Date: "2024-06-01"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))

	still, err := env.requests.Get(ctx, clientViewer, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, still.Status)

	_, err = env.requests.Update(ctx, clientViewer, existing.ID, RequestPatch{Title: strPtr("Shoot (edited)")})
	require.NoError(t, err, "edits that keep the date are allowed")

	overview, err := env.availability.Overview(ctx, "2024-06")
	require.NoError(t, err)
	require.Len(t, overview, 2)
	assert.Equal(t, domain.OriginAvailability, overview[0].Origin)
	assert.Equal(t, domain.OriginRequestCount, overview[1].Origin)
}

func TestRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.requests.Create(ctx, clientViewer, RequestInput{Date: "2024-06-10"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	_, err = env.requests.Create(ctx, clientViewer, RequestInput{Title: "Shoot"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	req, err := env.requests.Create(ctx, clientViewer, RequestInput{Title: "Shoot", Date: "2024-06-10", Location: "Studio"})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Equal(t, "client@x.com", req.ClientEmail)
	assert.Equal(t, "Cleo Client", req.ClientName)

	stranger := domain.Viewer{Email: "other@x.com", Role: domain.RoleClient}
	_, err = env.requests.Update(ctx, stranger, req.ID, RequestPatch{Title: strPtr("mine")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))
	assert.True(t, apperrors.HasCode(env.requests.Delete(ctx, stranger, req.ID), apperrors.CodeForbidden))

	_, err = env.requests.Approve(ctx, clientViewer, req.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))
	_, err = env.requests.Deny(ctx, adminViewer, req.ID, " ")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	denied, err := env.requests.Deny(ctx, adminViewer, req.ID, "fully booked")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusDenied, denied.Status)
	assert.Equal(t, "Ada Admin", denied.DeniedBy)
	assert.Equal(t, "fully booked", denied.ReasonOfDenial)
	require.NotNil(t, denied.DateDenied)

	_, err = env.requests.Approve(ctx, adminViewer, req.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStateConflict))
	_, err = env.requests.Update(ctx, clientViewer, req.ID, RequestPatch{Title: strPtr("retry")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStateConflict))
	assert.True(t, apperrors.HasCode(env.requests.Delete(ctx, clientViewer, req.ID), apperrors.CodeStateConflict))

	deniedList, err := env.requests.ListByStatus(ctx, domain.RequestStatusDenied)
	require.NoError(t, err)
	assert.Len(t, deniedList, 1)

	pending, err := env.requests.Create(ctx, clientViewer, RequestInput{Title: "Second", Date: "2024-06-11"})
	require.NoError(t, err)
	require.NoError(t, env.requests.Delete(ctx, clientViewer, pending.ID))
	_, err = env.requests.Get(ctx, adminViewer, pending.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	for _, topic := range env.changes.topics() {
		assert.Equal(t, events.TopicRequestChanged, topic)
	}
}

func TestGetHidesOtherClientsRequests(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	req, err := env.requests.Create(ctx, clientViewer, RequestInput{Title: "Shoot", Date: "2024-06-01"})
	require.NoError(t, err)

	own, err := env.requests.Get(ctx, domain.Viewer{Email: "CLIENT@x.com", Role: domain.RoleClient}, req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, own.ID)

	other := domain.Viewer{UserID: "u-other", Email: "other@x.com", Role: domain.RoleClient}
	_, err = env.requests.Get(ctx, other, req.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	_, err = env.requests.Get(ctx, domain.Viewer{Role: domain.RoleClient}, req.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	staff, err := env.requests.Get(ctx, execViewer, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "client@x.com", staff.ClientEmail)
}
