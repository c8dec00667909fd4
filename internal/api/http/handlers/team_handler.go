package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/api/dto"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/service"
)

// TeamHandler manages the caller's executive team.
type TeamHandler struct {
	teams *service.TeamService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(teams *service.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// List handles GET /team/members.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	members, err := h.teams.TeamOf(c.UserContext(), auth.ViewerFromContext(c))
	if err != nil {
		return err
	}
	return data(c, http.StatusOK, members)
}

// Add handles POST /team/members.
func (h *TeamHandler) Add(c *fiber.Ctx) error {
	var req dto.AddTeamMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	member, err := h.teams.AddMember(c.UserContext(), auth.ViewerFromContext(c), req.StafferID)
	if err != nil {
		return err
	}
	return data(c, http.StatusCreated, member)
}

// Remove handles DELETE /team/members/:stafferId.
func (h *TeamHandler) Remove(c *fiber.Ctx) error {
	if err := h.teams.RemoveMember(c.UserContext(), auth.ViewerFromContext(c), c.Params("stafferId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
