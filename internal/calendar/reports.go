package calendar

import (
	"sort"
	"time"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// Completed returns completed assignments, newest assignedAt first.
func Completed(assignments []domain.Assignment, sections []domain.Section) []domain.Assignment {
	out := filterStatus(assignments, domain.AssignmentStatusCompleted, sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out
}

// Rejected returns rejected assignments ordered by rejectedAt (assignedAt when
// missing), newest first.
func Rejected(assignments []domain.Assignment, sections []domain.Section) []domain.Assignment {
	out := filterStatus(assignments, domain.AssignmentStatusRejected, sections)
	sort.SliceStable(out, func(i, j int) bool { return rejectedOrder(out[i]).After(rejectedOrder(out[j])) })
	return out
}

func rejectedOrder(a domain.Assignment) time.Time {
	if a.RejectedAt != nil && !a.RejectedAt.IsZero() {
		return *a.RejectedAt
	}
	return a.AssignedAt
}

func filterStatus(assignments []domain.Assignment, status domain.AssignmentStatus, sections []domain.Section) []domain.Assignment {
	allowed := make(map[domain.Section]struct{}, len(sections))
	for _, s := range sections {
		if s != "" {
			allowed[s] = struct{}{}
		}
	}
	out := make([]domain.Assignment, 0)
	for _, a := range assignments {
		if a.Status != status {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[a.Section]; !ok {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
