package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hrapi/internal/model"
	"hrapi/internal/service"
)

// AttachDocument handles POST /employees/:id/documents. It records the
// relational pointer for a file that was already uploaded through the legacy
// upload endpoint; it performs no store I/O itself.
func AttachDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name   string               `json:"name"`
			Src    string               `json:"src"`
			Format model.DocumentFormat `json:"format"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		doc, err := svc.Attach(c.UserContext(), c.Params("id"), body.Name, body.Src, body.Format)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingParameter),
				errors.Is(err, service.ErrInvalidFormat):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListEmployeeDocuments handles GET /employees/:id/documents.
func ListEmployeeDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListByEmployee(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// DetachDocument handles DELETE /documents/:id. Only the pointer row is
// removed; deleting the remote file is a separate call to the legacy delete
// endpoint.
func DetachDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Detach(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
