package employee

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-workhub/internal/shared/apperror"
	"go-workhub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create provisions a new employee in the caller's organisation.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetInt64("organisation_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll serves the admin employee table with in-memory search, sorting and
// pagination over the tenant's rows.
func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.Rows(c.Request.Context(), c.GetInt64("organisation_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Name), q) ||
				strings.Contains(strings.ToLower(row.Email), q) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	sortRows(rows, c.DefaultQuery("sort_by", "created_at"), c.DefaultQuery("sort_dir", "desc"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	total := int64(len(rows))
	start := (page - 1) * pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, rows[start:end], &meta)
}

// Show returns one employee with profile and work stats.
func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid employee id", nil)
		return
	}

	resp, err := h.service.Show(c.Request.Context(), c.GetInt64("organisation_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Profile returns the caller's own profile, creating a blank one on first
// access.
func (h *Handler) Profile(c *gin.Context) {
	resp, err := h.service.GetOrCreateProfile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid employee id", nil)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetInt64("organisation_id"), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid employee id", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("organisation_id"), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), c.GetInt64("organisation_id"), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assigned": true}, nil)
}

// Export streams the tenant's employee sheet as an xlsx download.
func (h *Handler) Export(c *gin.Context) {
	file, err := h.service.Export(c.Request.Context(), c.GetInt64("organisation_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		h.logger.Error("export write failed", zap.Error(err))
	}
}

func sortRows(rows []RowResponse, by, dir string) {
	desc := dir == "desc"
	less := func(a, b RowResponse) bool {
		switch by {
		case "name":
			return a.Name < b.Name
		case "email":
			return a.Email < b.Email
		case "status":
			return a.Status < b.Status
		default:
			return a.CreatedAt < b.CreatedAt
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}
