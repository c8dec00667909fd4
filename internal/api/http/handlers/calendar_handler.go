package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/api/dto"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/calendar"
	"github.com/spec-kit/schedule-service/internal/service"
)

// CalendarHandler renders the caller's calendar, the completion reports and admin events.
type CalendarHandler struct {
	calendar *service.CalendarService
	reports  *service.ReportService
	events   *service.EventService
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(cal *service.CalendarService, reports *service.ReportService, events *service.EventService) *CalendarHandler {
	return &CalendarHandler{calendar: cal, reports: reports, events: events}
}

// Calendar handles GET /calendar?filterByUser=true.
func (h *CalendarHandler) Calendar(c *fiber.Ctx) error {
	view, err := h.calendar.Visible(c.UserContext(), auth.ViewerFromContext(c), calendar.Options{
		FilterByUser: c.QueryBool("filterByUser"),
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, view)
}

// Completed handles GET /reports/completed?section=.
func (h *CalendarHandler) Completed(c *fiber.Ctx) error {
	list, err := h.reports.Completed(c.UserContext(), sectionsQuery(c))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// Rejected handles GET /reports/rejected?section=.
func (h *CalendarHandler) Rejected(c *fiber.Ctx) error {
	list, err := h.reports.Rejected(c.UserContext(), sectionsQuery(c))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// Events handles GET /events.
func (h *CalendarHandler) Events(c *fiber.Ctx) error {
	list, err := h.events.List(c.UserContext())
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, list)
}

// CreateEvent handles POST /events.
func (h *CalendarHandler) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	event, err := h.events.Create(c.UserContext(), auth.ViewerFromContext(c), service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Start:       req.Start,
		StafferID:   req.StafferID,
	})
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, event)
}
