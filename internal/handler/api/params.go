package api

import (
	"net/http"

	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/handler/httperr"
	"gin-order-service/internal/handler/middleware"
	"gin-order-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// identity must only be used behind RequireAuth; a missing identity is a wiring bug.
func identity(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user_id missing from context"), "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return userID, role, true
}
