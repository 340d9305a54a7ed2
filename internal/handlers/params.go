package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/middleware"
)

// actorOrAbort reads the authenticated actor; routes are wired behind AuthMiddleware.
func actorOrAbort(c *gin.Context) (identity.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_actor", "Authentication required.")
		return identity.Actor{}, false
	}
	return actor, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request.")
		return false
	}
	return true
}
