package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/services"
)

type SearchHandler struct {
	Search *services.SearchService
}

func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{Search: search}
}

// Global is the GET /api/search endpoint.
func (h *SearchHandler) Global(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondError(c, apperr.BadRequest("query is required"))
		return
	}

	resp, err := h.Search.Global(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
