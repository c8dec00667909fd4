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

// RequestsHandler exposes client requests and their conversion into assignments.
type RequestsHandler struct {
	requests    *service.RequestService
	assignments *service.AssignmentService
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requests *service.RequestService, assignments *service.AssignmentService) *RequestsHandler {
	return &RequestsHandler{requests: requests, assignments: assignments}
}

// List handles GET /requests?status=. Clients only see their own requests.
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	var (
		list []domain.ClientRequest
		err  error
	)
	if status := c.Query("status"); status != "" {
		list, err = h.requests.ListByStatus(c.UserContext(), domain.RequestStatus(status))
	} else {
		list, err = h.requests.List(c.UserContext())
	}
	if err != nil {
		return err
	}

	viewer := auth.ViewerFromContext(c)
	if viewer.Role == domain.RoleClient {
		own := make([]domain.ClientRequest, 0, len(list))
		for _, r := range list {
			if viewer.Email != "" && identity.SameEmail(r.ClientEmail, viewer.Email) {
				own = append(own, r)
			}
		}
		list = own
	}
	return data(c, http.StatusOK, list)
}

// Get handles GET /requests/:id.
func (h *RequestsHandler) Get(c *fiber.Ctx) error {
	req, err := h.requests.Get(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, req)
}

// Create handles POST /requests.
func (h *RequestsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRequestRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	created, err := h.requests.Create(c.UserContext(), auth.ViewerFromContext(c), service.RequestInput{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		PersonToContact: req.PersonToContact,
		ContactInfo:     req.ContactInfo,
		ServiceNeeded:   req.ServiceNeeded,
		AttachedFile:    req.AttachedFile,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, created)
}

// Update handles PATCH /requests/:id.
func (h *RequestsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRequestRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	updated, err := h.requests.Update(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"), service.RequestPatch{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		PersonToContact: req.PersonToContact,
		ContactInfo:     req.ContactInfo,
		ServiceNeeded:   req.ServiceNeeded,
		AttachedFile:    req.AttachedFile,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, updated)
}

// Delete handles DELETE /requests/:id.
func (h *RequestsHandler) Delete(c *fiber.Ctx) error {
	if err := h.requests.Delete(c.UserContext(), auth.ViewerFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Approve handles POST /requests/:id/approve.
func (h *RequestsHandler) Approve(c *fiber.Ctx) error {
	req, err := h.requests.Approve(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, req)
}

// Deny handles POST /requests/:id/deny.
func (h *RequestsHandler) Deny(c *fiber.Ctx) error {
	var body dto.DenyRequestRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	req, err := h.requests.Deny(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"), body.Reason)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, req)
}

// Assign handles POST /requests/:id/assign.
func (h *RequestsHandler) Assign(c *fiber.Ctx) error {
	var body dto.AssignRequestRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	recipients := make([]service.Recipient, 0, len(body.Recipients))
	for _, r := range body.Recipients {
		recipients = append(recipients, recipientFrom(r))
	}
	created, err := h.assignments.AssignRequest(c.UserContext(), auth.ViewerFromContext(c), c.Params("id"),
		domain.Section(body.Section), recipients, service.Schedule{
			TaskTitle:    body.TaskTitle,
			TaskDate:     body.TaskDate,
			TaskTime:     body.TaskTime,
			TaskLocation: body.TaskLocation,
			Notes:        body.Notes,
		})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, created)
}

func recipientFrom(r dto.RecipientPayload) service.Recipient {
	return service.Recipient{
		AssignedTo:      r.AssignedTo,
		AssignedToID:    r.AssignedToID,
		AssignedToEmail: r.AssignedToEmail,
		AssignedToName:  r.AssignedToName,
	}
}
