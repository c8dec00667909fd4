package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/api/dto"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/identity"
	"github.com/spec-kit/schedule-service/internal/service"
)

// AssignmentsHandler exposes the assignment lifecycle and invitation responses.
type AssignmentsHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentsHandler constructs handler.
func NewAssignmentsHandler(assignments *service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{assignments: assignments}
}

// List handles GET /assignments. Staffers and clients only see assignments
// addressed to them.
func (h *AssignmentsHandler) List(c *fiber.Ctx) error {
	list, err := h.assignments.List(c.UserContext())
	if err != nil {
		return err
	}

	viewer := auth.ViewerFromContext(c)
	switch viewer.Role {
	case domain.RoleAdmin, domain.RoleExecutive, domain.RoleSectionHead:
	default:
		own := make([]domain.Assignment, 0, len(list))
		for _, a := range list {
			if identity.Matches(viewer.Tokens(), a.RecipientTokens()) {
				own = append(own, a)
			}
		}
		list = own
	}
	return data(c, http.StatusOK, list)
}

// Create handles POST /assignments.
func (h *AssignmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	created, err := h.assignments.CreateAssignment(c.UserContext(), auth.ViewerFromContext(c), service.AssignmentInput{
		Recipient: recipientFrom(req.RecipientPayload),
		Schedule: service.Schedule{
			TaskTitle:    req.TaskTitle,
			TaskDate:     req.TaskDate,
			TaskTime:     req.TaskTime,
			TaskLocation: req.TaskLocation,
			Notes:        req.Notes,
		},
		RequestID: req.RequestID,
		Section:   domain.Section(req.Section),
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, created)
}

// Update handles PATCH /assignments/:id.
func (h *AssignmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAssignmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	updated, err := h.assignments.UpdateAssignment(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"), service.AssignmentPatch{
		AssignedTo:      req.AssignedTo,
		AssignedToID:    req.AssignedToID,
		AssignedToEmail: req.AssignedToEmail,
		AssignedToName:  req.AssignedToName,
		TaskTitle:       req.TaskTitle,
		TaskDate:        req.TaskDate,
		TaskTime:        req.TaskTime,
		TaskLocation:    req.TaskLocation,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, updated)
}

// Delete handles DELETE /assignments/:id.
func (h *AssignmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.assignments.DeleteAssignment(c.UserContext(), auth.ViewerFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Accept handles POST /assignments/:id/accept.
func (h *AssignmentsHandler) Accept(c *fiber.Ctx) error {
	a, err := h.assignments.AcceptAssignment(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, a)
}

// Reject handles POST /assignments/:id/reject.
func (h *AssignmentsHandler) Reject(c *fiber.Ctx) error {
	var req dto.RejectAssignmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.assignments.RejectAssignment(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"), req.Reason)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, a)
}

// Complete handles POST /assignments/:id/complete.
func (h *AssignmentsHandler) Complete(c *fiber.Ctx) error {
	a, err := h.assignments.CompleteAssignment(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, a)
}

// Invitations handles GET /assignments/:id/invitations.
func (h *AssignmentsHandler) Invitations(c *fiber.Ctx) error {
	list, err := h.assignments.Invitations(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// RespondToInvitation handles POST /invitations/:id/respond.
func (h *AssignmentsHandler) RespondToInvitation(c *fiber.Ctx) error {
	var req dto.RespondInvitationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	inv, err := h.assignments.RespondToInvitation(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"), domain.InvitationStatus(req.Status))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, inv)
}
