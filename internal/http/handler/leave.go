package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hrapi/internal/service"
)

// UpsertLeave handles PUT /employees/:id/leave. The whole leave request is
// written as one unit, matching the manage screen's save action.
func UpsertLeave(svc service.LeaveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LeaveUpsertInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		l, err := svc.Upsert(c.UserContext(), c.Params("id"), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput),
				errors.Is(err, service.ErrInvalidFormat):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(l)
	}
}

// GetLeave handles GET /employees/:id/leave.
func GetLeave(svc service.LeaveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "leave request not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(l)
	}
}

// DeleteLeave handles DELETE /employees/:id/leave.
func DeleteLeave(svc service.LeaveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
