package service

import (
	"context"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// StafferService exposes the staff directory.
type StafferService struct {
	staffers repository.StafferRepository
}

// NewStafferService constructs the service.
func NewStafferService(staffers repository.StafferRepository) *StafferService {
	return &StafferService{staffers: staffers}
}

// List returns every staffer, optionally restricted to one section.
func (s *StafferService) List(ctx context.Context, section domain.Section) ([]domain.Staffer, error) {
	list, err := s.staffers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if section == "" {
		return list, nil
	}
	filtered := make([]domain.Staffer, 0, len(list))
	for _, st := range list {
		if st.Section == section {
			filtered = append(filtered, st)
		}
	}
	return filtered, nil
}

// Get returns one staffer.
func (s *StafferService) Get(ctx context.Context, id string) (*domain.Staffer, error) {
	st, err := s.staffers.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "staffer", id)
	}
	return st, nil
}
