package middleware

import (
	"net/http"

	"go-workhub/internal/domain"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface: any package with a matching Enforce
// method fits, keeping middleware decoupled from the rbac package wiring.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		organisationID := c.GetInt64("organisation_id")

		if userID == 0 || organisationID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		req := domain.EnforceRequest{
			UserID:         userID,
			OrganisationID: organisationID,
			Resource:       resource,
			Action:         action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
