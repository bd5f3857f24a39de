package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workhub/internal/employee"
	employeeerrors "go-workhub/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type fakeEmployeeService struct {
	CreateFn             func(ctx context.Context, organisationID int64, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	RowsFn               func(ctx context.Context, organisationID int64) ([]employee.RowResponse, error)
	ShowFn               func(ctx context.Context, organisationID, id int64) (employee.ShowResponse, error)
	GetOrCreateProfileFn func(ctx context.Context, userID int64) (employee.ProfileResponse, error)
	UpdateFn             func(ctx context.Context, organisationID, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn             func(ctx context.Context, organisationID, id int64) error
	AssignRoleFn         func(ctx context.Context, organisationID int64, req employee.AssignRoleRequest) error
	ExportFn             func(ctx context.Context, organisationID int64) (*excelize.File, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, organisationID int64, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, organisationID, req)
}
func (f *fakeEmployeeService) Rows(ctx context.Context, organisationID int64) ([]employee.RowResponse, error) {
	return f.RowsFn(ctx, organisationID)
}
func (f *fakeEmployeeService) Show(ctx context.Context, organisationID, id int64) (employee.ShowResponse, error) {
	return f.ShowFn(ctx, organisationID, id)
}
func (f *fakeEmployeeService) GetOrCreateProfile(ctx context.Context, userID int64) (employee.ProfileResponse, error) {
	return f.GetOrCreateProfileFn(ctx, userID)
}
func (f *fakeEmployeeService) Update(ctx context.Context, organisationID, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, organisationID, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, organisationID, id int64) error {
	return f.DeleteFn(ctx, organisationID, id)
}
func (f *fakeEmployeeService) AssignRole(ctx context.Context, organisationID int64, req employee.AssignRoleRequest) error {
	return f.AssignRoleFn(ctx, organisationID, req)
}
func (f *fakeEmployeeService) Export(ctx context.Context, organisationID int64) (*excelize.File, error) {
	return f.ExportFn(ctx, organisationID)
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, organisationID int64, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(7), organisationID)
				assert.Equal(t, "Jane Smith", req.Name)
				return employee.EmployeeResponse{ID: 10, Name: req.Name, Email: req.Email, Status: "active"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Jane Smith","email":"jane@example.com","password":"supersecret","job_title":"Engineer","joining_date":"2026-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("organisation_id", int64(7))

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Jane Smith")
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"not-an-email"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("organisation_id", int64(7))

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, organisationID int64, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Jane","email":"jane@example.com","password":"supersecret","job_title":"Engineer","joining_date":"2026-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("organisation_id", int64(7))

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rows := []employee.RowResponse{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Status: "active", CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Status: "inactive", CreatedAt: "2026-02-01T00:00:00Z"},
		{ID: 3, Name: "Carol", Email: "carol@example.com", Status: "active", CreatedAt: "2026-03-01T00:00:00Z"},
	}

	newCtx := func(target string) (*httptest.ResponseRecorder, *gin.Context) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		c.Set("organisation_id", int64(7))
		return w, c
	}

	svc := &fakeEmployeeService{
		RowsFn: func(ctx context.Context, organisationID int64) ([]employee.RowResponse, error) {
			out := make([]employee.RowResponse, len(rows))
			copy(out, rows)
			return out, nil
		},
	}
	h := employee.NewHandler(svc)

	t.Run("search filters by name and email", func(t *testing.T) {
		w, c := newCtx("/api/v1/employees?q=bob")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bob")
		assert.NotContains(t, w.Body.String(), "Alice")
	})

	t.Run("sorting by name ascending", func(t *testing.T) {
		w, c := newCtx("/api/v1/employees?sort_by=name&sort_dir=asc")

		h.GetAll(c)

		body := w.Body.String()
		assert.Less(t, strings.Index(body, "Alice"), strings.Index(body, "Carol"))
	})

	t.Run("pagination meta", func(t *testing.T) {
		w, c := newCtx("/api/v1/employees?page=2&page_size=2")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":3`)
		assert.Contains(t, w.Body.String(), `"page":2`)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bootstrap user protected", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, organisationID, id int64) error {
				return employeeerrors.ErrBootstrapUserProtected
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		c.Set("organisation_id", int64(7))

		h.Delete(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		c.Set("organisation_id", int64(7))

		h.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		ExportFn: func(ctx context.Context, organisationID int64) (*excelize.File, error) {
			f := excelize.NewFile()
			return f, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/export", nil)
	c.Set("organisation_id", int64(7))

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, w.Body.Len())
}
