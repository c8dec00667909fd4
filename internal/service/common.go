package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// Clock returns the current time. Tests replace it to get stable timestamps.
type Clock func() time.Time

func defaultClock(c Clock) Clock {
	if c == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return c
}

// lookupErr translates a store error for a single-record read.
func lookupErr(err error, resource, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return apperrors.MapError(err)
}

func requireRole(actor domain.Viewer, allowed ...domain.Role) error {
	if actor.Role == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	for _, role := range allowed {
		if actor.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden("insufficient role")
}

func validateDate(field, value string) error {
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		return apperrors.NewValidationError(field+" must be formatted as YYYY-MM-DD", map[string]any{field: value})
	}
	return nil
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func publish(ctx context.Context, bus events.Bus, change events.Change) {
	if bus == nil {
		return
	}
	_ = bus.Emit(ctx, change)
}
