package service

import (
	"context"
	"time"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// Reminder is notified about each assignment found by the sweep.
type Reminder interface {
	Remind(ctx context.Context, a domain.Assignment)
}

// ReminderService finds pending assignments whose date is close.
type ReminderService struct {
	assignments repository.AssignmentRepository
	reminder    Reminder
	lookahead   time.Duration
	now         Clock
}

// NewReminderService creates the service.
func NewReminderService(assignments repository.AssignmentRepository, reminder Reminder, lookahead time.Duration, clock Clock) *ReminderService {
	if lookahead <= 0 {
		lookahead = 24 * time.Hour
	}
	return &ReminderService{assignments: assignments, reminder: reminder, lookahead: lookahead, now: defaultClock(clock)}
}

// Due returns pending assignments dated from today up to the end of the lookahead
// window.
func (s *ReminderService) Due(ctx context.Context) ([]domain.Assignment, error) {
	list, err := s.assignments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	now := s.now()
	from := now.Format(domain.DateLayout)
	to := now.Add(s.lookahead).Format(domain.DateLayout)

	due := make([]domain.Assignment, 0)
	for _, a := range list {
		if a.Status != domain.AssignmentStatusPending || a.TaskDate == "" {
			continue
		}
		// Same-layout dates compare correctly as strings.
		if a.TaskDate >= from && a.TaskDate <= to {
			due = append(due, a)
		}
	}
	return due, nil
}

// Sweep sends a reminder for every due assignment and returns how many were sent.
func (s *ReminderService) Sweep(ctx context.Context) (int, error) {
	due, err := s.Due(ctx)
	if err != nil {
		return 0, err
	}
	for _, a := range due {
		s.reminder.Remind(ctx, a)
	}
	return len(due), nil
}
