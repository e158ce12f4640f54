package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/media"
	"github.com/workhive/workhive-backend/internal/models"
	"github.com/workhive/workhive-backend/internal/services"
)

type JobHandler struct {
	Jobs      *services.JobService
	UploadDir string
}

func NewJobHandler(jobs *services.JobService, uploadDir string) *JobHandler {
	return &JobHandler{Jobs: jobs, UploadDir: uploadDir}
}

// Create is the POST /api/jobs endpoint; the company logo may arrive as
// a multipart "logo" file alongside the form fields.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	logo, err := h.stagedLogo(c)
	if err != nil {
		respondError(c, err)
		return
	}

	job, err := h.Jobs.Create(&req, auth.UserID(c), logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// stagedLogo uploads the optional multipart logo and returns nil when
// none was attached.
func (h *JobHandler) stagedLogo(c *gin.Context) (*models.Image, error) {
	file, err := c.FormFile("logo")
	if err != nil {
		return nil, nil
	}
	staged, err := media.Stage(c, file, h.UploadDir)
	if err != nil {
		return nil, err
	}
	defer media.Discard(staged)

	img, err := h.Jobs.Uploader.Upload(c.Request.Context(), staged)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (h *JobHandler) List(c *gin.Context) {
	resp, err := h.Jobs.List(queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns a job, recording the caller as a viewer when a token was
// presented.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.Get(id, auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.Jobs.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Jobs.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *JobHandler) UploadLogo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	file, err := c.FormFile("logo")
	if err != nil {
		respondError(c, apperr.BadRequest("no file provided"))
		return
	}

	staged, err := media.Stage(c, file, h.UploadDir)
	if err != nil {
		respondError(c, err)
		return
	}
	defer media.Discard(staged)

	job, err := h.Jobs.UploadLogo(c.Request.Context(), id, staged)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Viewers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.Jobs.Viewers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleSave is the POST /api/jobs/:id/save endpoint.
func (h *JobHandler) ToggleSave(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.Jobs.ToggleSave(auth.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Apply is the POST /api/jobs/:id/apply endpoint. The resume arrives as
// a multipart "resume" file or a resume_link form field.
func (h *JobHandler) Apply(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dtos.ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	resume := req.ResumeLink
	if file, err := c.FormFile("resume"); err == nil {
		staged, err := media.Stage(c, file, h.UploadDir)
		if err != nil {
			respondError(c, err)
			return
		}
		defer media.Discard(staged)

		img, err := h.Jobs.Uploader.Upload(c.Request.Context(), staged)
		if err != nil {
			respondError(c, err)
			return
		}
		resume = img.URL
	}

	app, err := h.Jobs.Apply(auth.UserID(c), id, resume, req.CoverLetter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Job application submitted successfully",
		"application": app,
	})
}

func (h *JobHandler) Applicants(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.Jobs.Applicants(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Filter(c *gin.Context) {
	var f dtos.JobFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query: " + err.Error()})
		return
	}
	jobs, err := h.Jobs.Filter(&f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Related(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	related, err := h.Jobs.Related(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Related jobs fetched successfully",
		"relatedJobs": related,
	})
}

func (h *JobHandler) Count(c *gin.Context) {
	count, err := h.Jobs.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Job count fetched successfully",
		"jobCount": count,
	})
}

// DeleteSaved is the DELETE /api/jobs/saved/:id endpoint.
func (h *JobHandler) DeleteSaved(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Jobs.DeleteSaved(auth.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved jobs"})
}

// SavedJobs lists the caller's bookmarked jobs.
func (h *JobHandler) SavedJobs(c *gin.Context) {
	jobs, err := h.Jobs.SavedJobs(auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedJobs": jobs})
}
