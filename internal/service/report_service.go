package service

import (
	"context"

	"github.com/spec-kit/schedule-service/internal/calendar"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// ReportService serves the completed and rejected assignment reports.
type ReportService struct {
	assignments repository.AssignmentRepository
}

// NewReportService creates the service.
func NewReportService(assignments repository.AssignmentRepository) *ReportService {
	return &ReportService{assignments: assignments}
}

// Completed lists completed assignments, optionally restricted to sections.
func (s *ReportService) Completed(ctx context.Context, sections []domain.Section) ([]domain.Assignment, error) {
	list, err := s.assignments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return calendar.Completed(list, sections), nil
}

// Rejected lists rejected assignments, optionally restricted to sections.
func (s *ReportService) Rejected(ctx context.Context, sections []domain.Section) ([]domain.Assignment, error) {
	list, err := s.assignments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return calendar.Rejected(list, sections), nil
}
