package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/api/dto"
	"github.com/spec-kit/schedule-service/internal/domain"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// bind decodes the JSON body into payload and runs its validation rules.
func bind(c *fiber.Ctx, payload any) error {
	if err := c.BodyParser(payload); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return dto.Validate(payload)
}

func data(c *fiber.Ctx, status int, value any) error {
	return c.Status(status).JSON(fiber.Map{"data": value})
}

// sectionsQuery reads a comma separated ?section= list.
func sectionsQuery(c *fiber.Ctx) []domain.Section {
	raw := c.Query("section")
	if raw == "" {
		return nil
	}
	var sections []domain.Section
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			sections = append(sections, domain.Section(part))
		}
	}
	return sections
}
