package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hrapi/internal/model"
	"hrapi/internal/service"
	serviceMocks "hrapi/internal/service/mocks"
)

func multipartUpload(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/api/upload/document", UploadDocument(mockSvc))

	t.Run("success returns the legacy wire shape", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, "emp123", "NID", "nid-card.png", []byte("img")).
			Return(&service.UploadResult{
				Src:      "emp123/nid.png",
				Filename: "nid.png",
				Format:   model.FormatPNG,
			}, nil).Once()

		body, ct := multipartUpload(t, map[string]string{
			"employeeId":   "emp123",
			"documentName": "NID",
		}, "file", "nid-card.png", []byte("img"))

		req := httptest.NewRequest(http.MethodPost, "/api/upload/document", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res map[string]any
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "emp123/nid.png", res["src"])
		assert.Equal(t, "png", res["format"])
		assert.Equal(t, "nid.png", res["filename"])
		assert.NotContains(t, res, "message")
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		body, ct := multipartUpload(t, map[string]string{"employeeId": "emp123"}, "", "", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/upload/document", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res uploadResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.False(t, res.OK)
		assert.Equal(t, "No file", res.Message)
	})

	t.Run("missing employeeId", func(t *testing.T) {
		body, ct := multipartUpload(t, nil, "file", "nid.png", []byte("img"))

		req := httptest.NewRequest(http.MethodPost, "/api/upload/document", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res uploadResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.False(t, res.OK)
		assert.Equal(t, "Missing employeeId", res.Message)
	})

	t.Run("documentName defaults to document", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, "emp123", "document", "cv.pdf", mock.Anything).
			Return(&service.UploadResult{Src: "emp123/document.pdf", Filename: "document.pdf", Format: model.FormatPDF}, nil).Once()

		body, ct := multipartUpload(t, map[string]string{"employeeId": "emp123"}, "file", "cv.pdf", []byte("pdf"))

		req := httptest.NewRequest(http.MethodPost, "/api/upload/document", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failures are 400 with the error message", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
		}{
			{"invalid format", fmt.Errorf("%w: allowed: %s", service.ErrInvalidFormat, model.AcceptedFormatList())},
			{"payload too large", fmt.Errorf("%w: max 5 MB", service.ErrPayloadTooLarge)},
			{"missing parameter", fmt.Errorf("%w: employeeId", service.ErrMissingParameter)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockSvc.On("Upload", mock.Anything, "emp123", "document", "f.bin", mock.Anything).
					Return(nil, tt.err).Once()

				body, ct := multipartUpload(t, map[string]string{"employeeId": "emp123"}, "file", "f.bin", []byte("x"))

				req := httptest.NewRequest(http.MethodPost, "/api/upload/document", body)
				req.Header.Set("Content-Type", ct)
				resp, _ := app.Test(req)

				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				var res uploadResponse
				json.NewDecoder(resp.Body).Decode(&res)
				assert.False(t, res.OK)
				assert.Equal(t, tt.err.Error(), res.Message)
			})
		}
		mockSvc.AssertExpectations(t)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, "emp123", "document", "nid.png", mock.Anything).
			Return(nil, fmt.Errorf("%w: dial tcp: connection refused", service.ErrStoreUnavailable)).Once()

		body, ct := multipartUpload(t, map[string]string{"employeeId": "emp123"}, "file", "nid.png", []byte("img"))

		req := httptest.NewRequest(http.MethodPost, "/api/upload/document", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var res uploadResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.False(t, res.OK)
		assert.NotEmpty(t, res.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteUploadedDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/api/upload/document", DeleteUploadedDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "emp123", "nid.png").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/upload/document?employeeId=emp123&filename=nid.png", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res map[string]any
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, map[string]any{"ok": true}, res)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing query parameters", func(t *testing.T) {
		for _, target := range []string{
			"/api/upload/document",
			"/api/upload/document?employeeId=emp123",
			"/api/upload/document?filename=nid.png",
		} {
			req := httptest.NewRequest(http.MethodDelete, target, nil)
			resp, _ := app.Test(req)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var res uploadResponse
			json.NewDecoder(resp.Body).Decode(&res)
			assert.False(t, res.OK)
			assert.Equal(t, "Missing employeeId or filename", res.Message)
		}
	})

	t.Run("store failure is 500", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "emp123", "ghost.png").
			Return(fmt.Errorf("%w: 550 no such file", service.ErrDeleteFailed)).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/upload/document?employeeId=emp123&filename=ghost.png", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var res uploadResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.False(t, res.OK)
		mockSvc.AssertExpectations(t)
	})
}
