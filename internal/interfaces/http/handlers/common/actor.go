// Package common holds helpers shared by the HTTP handlers.
package common

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/interfaces/http/middleware"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
)

// Actor is the authenticated staff member making the request.
type Actor struct {
	ID   uint
	Name string
	Role authorization.AdminRole
}

func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		ID:   middleware.AdminID(c),
		Name: middleware.AdminName(c),
		Role: authorization.RoleFromContext(c),
	}
}
