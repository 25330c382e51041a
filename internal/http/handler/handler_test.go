package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hrapi/internal/model"
	"hrapi/internal/service"
	serviceMocks "hrapi/internal/service/mocks"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListEmployees(t *testing.T) {
	mockSvc := new(serviceMocks.MockEmployeeService)
	app := fiber.New()
	app.Get("/employees", ListEmployees(mockSvc))

	t.Run("success with filters", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.EmployeeListQuery{
			Page:     2,
			PageSize: 25,
			Query:    "jane",
			Statuses: []model.EmploymentStatus{model.StatusActive, model.StatusOnLeave},
		}).Return(&service.EmployeeListResult{
			Items:    []model.Employee{{ID: uuid.New().String()}},
			Total:    1,
			Page:     2,
			PageSize: 25,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/employees?page=2&page_size=25&q=jane&statuses=ACTIVE,ON_LEAVE", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.EmployeeListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees?page=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_PAGE", body.Error.Code)
	})

	t.Run("invalid filter enum", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidInput).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees?statuses=RETIRED", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_FILTER", body.Error.Code)
	})
}

func TestCreateEmployee(t *testing.T) {
	mockSvc := new(serviceMocks.MockEmployeeService)
	app := fiber.New()
	app.Post("/employees", CreateEmployee(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.EmployeeInput) bool {
			return in.Name == "Jane Doe" && in.EmpID == "EMP-001"
		})).Return(&model.Employee{ID: id, Name: "Jane Doe"}, nil).Once()

		body := bytes.NewBufferString(`{"name":"Jane Doe","emp_id":"EMP-001","contract_type":"FULL_TIME"}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Employee
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidInput).Once()

		body := bytes.NewBufferString(`{"name":"J"}`)
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_INPUT", res.Error.Code)
	})
}

func TestGetEmployee(t *testing.T) {
	mockSvc := new(serviceMocks.MockEmployeeService)
	app := fiber.New()
	app.Get("/employees/:id", GetEmployee(mockSvc))

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateEmployeeStatus(t *testing.T) {
	mockSvc := new(serviceMocks.MockEmployeeService)
	app := fiber.New()
	app.Patch("/employees/:id/status", UpdateEmployeeStatus(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("UpdateStatus", mock.Anything, id, model.StatusTerminated).Return(nil).Once()

		body := bytes.NewBufferString(`{"status":"TERMINATED"}`)
		req := httptest.NewRequest(http.MethodPatch, "/employees/"+id+"/status", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("UpdateStatus", mock.Anything, id, model.EmploymentStatus("RETIRED")).
			Return(service.ErrInvalidInput).Once()

		body := bytes.NewBufferString(`{"status":"RETIRED"}`)
		req := httptest.NewRequest(http.MethodPatch, "/employees/"+id+"/status", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestEmployeeDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/employees/:id/documents", ListEmployeeDocuments(mockSvc))
	app.Post("/employees/:id/documents", AttachDocument(mockSvc))
	app.Delete("/documents/:id", DetachDocument(mockSvc))

	t.Run("list", func(t *testing.T) {
		mockSvc.On("ListByEmployee", mock.Anything, "emp123").Return([]service.DocumentView{
			{EmployeeDocument: model.EmployeeDocument{ID: "doc-1", Src: "emp123/nid.png"}, URL: "https://files.example.com/emp123/nid.png"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees/emp123/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var res struct {
			Data []service.DocumentView `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&res)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "https://files.example.com/emp123/nid.png", res.Data[0].URL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("attach", func(t *testing.T) {
		mockSvc.On("Attach", mock.Anything, "emp123", model.DocNID, "emp123/nid.png", model.FormatPNG).
			Return(&model.EmployeeDocument{ID: "doc-1"}, nil).Once()

		body := bytes.NewBufferString(`{"name":"NID","src":"emp123/nid.png","format":"png"}`)
		req := httptest.NewRequest(http.MethodPost, "/employees/emp123/documents", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("attach invalid format", func(t *testing.T) {
		mockSvc.On("Attach", mock.Anything, "emp123", "nid", "emp123/nid.exe", model.DocumentFormat("exe")).
			Return(nil, service.ErrInvalidFormat).Once()

		body := bytes.NewBufferString(`{"name":"nid","src":"emp123/nid.exe","format":"exe"}`)
		req := httptest.NewRequest(http.MethodPost, "/employees/emp123/documents", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("detach not found", func(t *testing.T) {
		mockSvc.On("Detach", mock.Anything, "missing").Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/missing", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLeaveEndpoints(t *testing.T) {
	mockSvc := new(serviceMocks.MockLeaveService)
	app := fiber.New()
	app.Put("/employees/:id/leave", UpsertLeave(mockSvc))
	app.Get("/employees/:id/leave", GetLeave(mockSvc))
	app.Delete("/employees/:id/leave", DeleteLeave(mockSvc))

	t.Run("upsert", func(t *testing.T) {
		mockSvc.On("Upsert", mock.Anything, "emp123", mock.MatchedBy(func(in service.LeaveUpsertInput) bool {
			return in.Subject != nil && *in.Subject == "Annual leave"
		})).Return(&model.LeaveRequest{ID: "leave-1", EmployeeID: "emp123"}, nil).Once()

		body := bytes.NewBufferString(`{"subject":"Annual leave"}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/emp123/leave", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.LeaveRequest
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "leave-1", result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("get not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "emp123").Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees/emp123/leave", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "emp123").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/employees/emp123/leave", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestOrgEndpoints(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrgService)
	app := fiber.New()
	app.Post("/departments", CreateDepartment(mockSvc))
	app.Get("/departments", ListDepartments(mockSvc))
	app.Put("/designations/:id", RenameDesignation(mockSvc))

	t.Run("create department", func(t *testing.T) {
		mockSvc.On("CreateDepartment", mock.Anything, "Engineering").
			Return(&model.Department{ID: "dep-1", Name: "Engineering"}, nil).Once()

		body := bytes.NewBufferString(`{"name":"Engineering"}`)
		req := httptest.NewRequest(http.MethodPost, "/departments", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("list departments", func(t *testing.T) {
		mockSvc.On("ListDepartments", mock.Anything).
			Return([]model.Department{{ID: "dep-1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/departments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rename missing designation", func(t *testing.T) {
		mockSvc.On("RenameDesignation", mock.Anything, "missing", "Lead").
			Return(nil, service.ErrNotFound).Once()

		body := bytes.NewBufferString(`{"name":"Lead"}`)
		req := httptest.NewRequest(http.MethodPut, "/designations/missing", body)
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil, Services{
		Documents: new(serviceMocks.MockDocumentService),
		Employees: new(serviceMocks.MockEmployeeService),
		Org:       new(serviceMocks.MockOrgService),
		Leaves:    new(serviceMocks.MockLeaveService),
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
