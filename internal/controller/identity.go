package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/huyphan2705/hireflow/internal/apperror"
	"github.com/huyphan2705/hireflow/internal/dto"
)

const actorContextKey = "actor_id"

// RequireActor resolves the caller's identity from the X-Actor-ID header set
// by the upstream gateway after authentication. Requests without it are
// rejected before any handler runs.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Actor-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing X-Actor-ID header"})
			return
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid X-Actor-ID header"})
			return
		}
		c.Set(actorContextKey, uint(id))
		c.Next()
	}
}

// ActorID returns the authenticated actor set by RequireActor.
func ActorID(c *gin.Context) uint {
	return c.GetUint(actorContextKey)
}

// RespondError maps a service failure to its HTTP status.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindAuthorization:
		status = http.StatusForbidden
	case apperror.KindInvalidState, apperror.KindDuplicateInvite:
		status = http.StatusConflict
	case apperror.KindExternalProvider:
		status = http.StatusBadGateway
	case apperror.KindPersistence:
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
