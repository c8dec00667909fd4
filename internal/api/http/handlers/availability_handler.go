package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/api/dto"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/service"
)

// AvailabilityHandler exposes the per-date availability gate.
type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

// NewAvailabilityHandler constructs handler.
func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// List handles GET /availability.
func (h *AvailabilityHandler) List(c *fiber.Ctx) error {
	list, err := h.availability.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// Overview handles GET /availability/overview?month=YYYY-MM.
func (h *AvailabilityHandler) Overview(c *fiber.Ctx) error {
	items, err := h.availability.Overview(c.UserContext(), c.Query("month"))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, items)
}

// CanRequest handles GET /availability/:date/can-request.
func (h *AvailabilityHandler) CanRequest(c *fiber.Ctx) error {
	date := c.Params("date")
	if err := dto.ValidateDate("date", date); err != nil {
		return err
	}
	ok, err := h.availability.CanRequest(c.UserContext(), date)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, fiber.Map{"date": date, "canRequest": ok})
}

// Set handles PUT /availability/:date.
func (h *AvailabilityHandler) Set(c *fiber.Ctx) error {
	var req dto.SetAvailabilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	record, err := h.availability.SetAvailability(c.UserContext(), auth.ViewerFromContext(c), c.Params("date"), *req.Available, req.Notes)
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, record)
}

// Delete handles DELETE /availability/:date.
func (h *AvailabilityHandler) Delete(c *fiber.Ctx) error {
	if err := h.availability.DeleteAvailability(c.UserContext(), auth.ViewerFromContext(c), c.Params("date")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
