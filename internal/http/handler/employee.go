package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hrapi/internal/model"
	"hrapi/internal/service"
)

// ListEmployees handles GET /employees with paging, search and filters.
func ListEmployees(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := strconv.Atoi(c.Query("page", "1"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
		}
		pageSize, err := strconv.Atoi(c.Query("page_size", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE_SIZE", "invalid page_size")
		}

		q := service.EmployeeListQuery{
			Page:          page,
			PageSize:      pageSize,
			Query:         c.Query("q"),
			DepartmentID:  c.Query("department_id"),
			DesignationID: c.Query("designation_id"),
		}
		for _, s := range splitCSV(c.Query("statuses")) {
			q.Statuses = append(q.Statuses, model.EmploymentStatus(s))
		}
		for _, ct := range splitCSV(c.Query("contracts")) {
			q.Contracts = append(q.Contracts, model.ContractType(ct))
		}

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// CreateEmployee handles POST /employees.
func CreateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EmployeeInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		e, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GetEmployee handles GET /employees/:id.
func GetEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "employee not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(e)
	}
}

// UpdateEmployee handles PUT /employees/:id.
func UpdateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EmployeeInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		e, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "employee not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(e)
	}
}

// UpdateEmployeeStatus handles PATCH /employees/:id/status.
func UpdateEmployeeStatus(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status model.EmploymentStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		err := svc.UpdateStatus(c.UserContext(), c.Params("id"), body.Status)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "employee not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteEmployee handles DELETE /employees/:id.
func DeleteEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
