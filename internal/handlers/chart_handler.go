package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/services"
)

type ChartHandler struct {
	Charts *services.ChartService
}

func NewChartHandler(charts *services.ChartService) *ChartHandler {
	return &ChartHandler{Charts: charts}
}

// TrackView is the PUT /api/charts/:jobId/view endpoint.
func (h *ChartHandler) TrackView(c *gin.Context) {
	id, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	job, err := h.Charts.TrackView(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *ChartHandler) ViewsOverTime(c *gin.Context)    { h.rows(c, h.Charts.ViewsOverTime) }
func (h *ChartHandler) ViewsByTitle(c *gin.Context)     { h.rows(c, h.Charts.ViewsByTitle) }
func (h *ChartHandler) ViewsByType(c *gin.Context)      { h.rows(c, h.Charts.ViewsByType) }
func (h *ChartHandler) PostingsByLocation(c *gin.Context) { h.rows(c, h.Charts.PostingsByLocation) }
func (h *ChartHandler) PostingsByCompany(c *gin.Context)  { h.rows(c, h.Charts.PostingsByCompany) }
func (h *ChartHandler) PostingsByEmploymentType(c *gin.Context) {
	h.rows(c, h.Charts.PostingsByEmploymentType)
}
func (h *ChartHandler) ApplicationsByJobType(c *gin.Context) {
	h.rows(c, h.Charts.ApplicationsByJobType)
}
func (h *ChartHandler) RegistrationsOverTime(c *gin.Context) {
	h.rows(c, h.Charts.RegistrationsOverTime)
}
func (h *ChartHandler) SeekerPostsByExperienceLevel(c *gin.Context) {
	h.rows(c, h.Charts.SeekerPostsByExperienceLevel)
}
func (h *ChartHandler) SeekerPostsOverTime(c *gin.Context) { h.rows(c, h.Charts.SeekerPostsOverTime) }
func (h *ChartHandler) HiringsOverTime(c *gin.Context)     { h.rows(c, h.Charts.HiringsOverTime) }

func (h *ChartHandler) rows(c *gin.Context, fn func() ([]services.ChartRow, error)) {
	rows, err := fn()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
