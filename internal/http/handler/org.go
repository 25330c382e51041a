package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hrapi/internal/service"
)

type orgNameBody struct {
	Name string `json:"name"`
}

// ListDepartments handles GET /departments.
func ListDepartments(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListDepartments(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// CreateDepartment handles POST /departments.
func CreateDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body orgNameBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d, err := svc.CreateDepartment(c.UserContext(), body.Name)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

// RenameDepartment handles PUT /departments/:id.
func RenameDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body orgNameBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d, err := svc.RenameDepartment(c.UserContext(), c.Params("id"), body.Name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "department not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(d)
	}
}

// DeleteDepartment handles DELETE /departments/:id.
func DeleteDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteDepartment(c.UserContext(), c.Params("id")); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListDesignations handles GET /designations.
func ListDesignations(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListDesignations(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// CreateDesignation handles POST /designations.
func CreateDesignation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body orgNameBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d, err := svc.CreateDesignation(c.UserContext(), body.Name)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

// RenameDesignation handles PUT /designations/:id.
func RenameDesignation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body orgNameBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d, err := svc.RenameDesignation(c.UserContext(), c.Params("id"), body.Name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "designation not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(d)
	}
}

// DeleteDesignation handles DELETE /designations/:id.
func DeleteDesignation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteDesignation(c.UserContext(), c.Params("id")); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
