package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/services"
)

type JobSeekerHandler struct {
	Seekers *services.JobSeekerService
}

func NewJobSeekerHandler(seekers *services.JobSeekerService) *JobSeekerHandler {
	return &JobSeekerHandler{Seekers: seekers}
}

func (h *JobSeekerHandler) Create(c *gin.Context) {
	var req dtos.JobSeekerPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	post, err := h.Seekers.Create(auth.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *JobSeekerHandler) List(c *gin.Context) {
	resp, err := h.Seekers.List(
		queryInt(c, "page", 1),
		queryInt(c, "limit", 10),
		c.Query("skills"),
		c.Query("name"),
		c.Query("jobTitle"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleHire is the POST /api/jobseeker/hire endpoint: one route toggles
// both the hire and the unhire.
func (h *JobSeekerHandler) ToggleHire(c *gin.Context) {
	var req dtos.HireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	resp, err := h.Seekers.ToggleHire(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if resp.Hired {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

func (h *JobSeekerHandler) HiringDetails(c *gin.Context) {
	details, err := h.Seekers.HiringDetails()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *JobSeekerHandler) Update(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	var req dtos.JobSeekerPostUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	post, err := h.Seekers.Update(postID, auth.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *JobSeekerHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	if err := h.Seekers.Delete(postID, auth.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *JobSeekerHandler) Count(c *gin.Context) {
	count, err := h.Seekers.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalPosts": count})
}
