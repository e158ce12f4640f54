package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/apperr"
)

// HealthCheck is the GET /health endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps a service error onto the JSON error body every
// endpoint returns on failure.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"message": err.Error()})
}

// pathID parses the named path parameter as an entity id; a malformed
// id is a 400 before any lookup happens.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, apperr.BadRequest("invalid "+name+" format"))
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
