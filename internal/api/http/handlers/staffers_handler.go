package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/service"
)

// StaffersHandler exposes the staff directory.
type StaffersHandler struct {
	staffers *service.StafferService
}

// NewStaffersHandler constructs handler.
func NewStaffersHandler(staffers *service.StafferService) *StaffersHandler {
	return &StaffersHandler{staffers: staffers}
}

// List handles GET /staffers?section=.
func (h *StaffersHandler) List(c *fiber.Ctx) error {
	list, err := h.staffers.List(c.UserContext(), domain.Section(c.Query("section")))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// Get handles GET /staffers/:id.
func (h *StaffersHandler) Get(c *fiber.Ctx) error {
	staffer, err := h.staffers.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, staffer)
}
