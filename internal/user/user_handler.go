package user

import (
	"net/http"
	"strconv"

	"go-workhub/internal/shared/apperror"
	"go-workhub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Directory lists the tenant's employee directory. Inactive users are hidden
// unless include_inactive=1 is passed explicitly.
func (h *Handler) Directory(c *gin.Context) {
	ctx := c.Request.Context()
	organisationID := c.GetInt64("organisation_id")
	includeInactive := c.Query("include_inactive") == "1"
	excludeID, _ := strconv.ParseInt(c.Query("exclude_id"), 10, 64)

	h.logger.Debug("http directory",
		zap.Int64("organisation_id", organisationID),
		zap.Bool("include_inactive", includeInactive),
	)

	var (
		entries []DirectoryEntry
		err     error
	)
	if excludeID != 0 {
		entries, err = h.service.Employees(ctx, DirectoryFilter{
			OrganisationID:  organisationID,
			ExcludeUserID:   excludeID,
			IncludeInactive: includeInactive,
		})
	} else {
		entries, err = h.service.OrganisationDirectory(ctx, organisationID, includeInactive)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toDirectoryResponse(entries), nil)
}

// Admins lists global admins, optionally excluding one user id.
func (h *Handler) Admins(c *gin.Context) {
	ctx := c.Request.Context()
	exceptID, _ := strconv.ParseInt(c.Query("exclude_id"), 10, 64)

	entries, err := h.service.Admins(ctx, exceptID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toDirectoryResponse(entries), nil)
}

// Clients lists the tenant's client users.
func (h *Handler) Clients(c *gin.Context) {
	ctx := c.Request.Context()
	organisationID := c.GetInt64("organisation_id")

	entries, err := h.service.OrganisationClients(ctx, organisationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toDirectoryResponse(entries), nil)
}
