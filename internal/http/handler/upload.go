package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"hrapi/internal/service"
)

// The upload/delete endpoints keep the response contract the web client was
// built against: a bare {ok, ...} object rather than the error envelope used
// by the rest of the API. Do not change these shapes without migrating the
// client.

type uploadResponse struct {
	OK       bool   `json:"ok"`
	Src      string `json:"src,omitempty"`
	Format   string `json:"format,omitempty"`
	Filename string `json:"filename,omitempty"`
	Message  string `json:"message,omitempty"`
}

func uploadError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(uploadResponse{OK: false, Message: message})
}

// UploadDocument handles POST /api/upload/document (multipart form with
// fields file, employeeId, documentName).
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return uploadError(c, fiber.StatusBadRequest, "No file")
		}
		employeeID := c.FormValue("employeeId")
		if employeeID == "" {
			return uploadError(c, fiber.StatusBadRequest, "Missing employeeId")
		}
		documentName := c.FormValue("documentName", "document")

		f, err := fh.Open()
		if err != nil {
			return uploadError(c, fiber.StatusBadRequest, "Cannot open uploaded file")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return uploadError(c, fiber.StatusBadRequest, "Cannot read uploaded file")
		}

		res, err := docSvc.Upload(c.UserContext(), employeeID, documentName, fh.Filename, data)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPayloadTooLarge),
				errors.Is(err, service.ErrInvalidFormat),
				errors.Is(err, service.ErrMissingParameter):
				return uploadError(c, fiber.StatusBadRequest, err.Error())
			default:
				return uploadError(c, fiber.StatusInternalServerError, err.Error())
			}
		}

		return c.JSON(uploadResponse{
			OK:       true,
			Src:      res.Src,
			Format:   string(res.Format),
			Filename: res.Filename,
		})
	}
}

// DeleteUploadedDocument handles DELETE /api/upload/document?employeeId=&filename=.
// It removes only the remote file; the relational pointer is managed through
// the documents endpoints.
func DeleteUploadedDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID := c.Query("employeeId")
		filename := c.Query("filename")

		if employeeID == "" || filename == "" {
			return uploadError(c, fiber.StatusBadRequest, "Missing employeeId or filename")
		}

		if err := docSvc.Delete(c.UserContext(), employeeID, filename); err != nil {
			if errors.Is(err, service.ErrMissingParameter) {
				return uploadError(c, fiber.StatusBadRequest, err.Error())
			}
			return uploadError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(uploadResponse{OK: true})
	}
}
