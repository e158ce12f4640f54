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

type EventHandler struct {
	Events    *services.EventService
	UploadDir string
}

func NewEventHandler(events *services.EventService, uploadDir string) *EventHandler {
	return &EventHandler{Events: events, UploadDir: uploadDir}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req dtos.EventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	var logo *models.Image
	if file, err := c.FormFile("logo"); err == nil {
		staged, err := media.Stage(c, file, h.UploadDir)
		if err != nil {
			respondError(c, err)
			return
		}
		defer media.Discard(staged)

		img, err := h.Events.Uploader.Upload(c.Request.Context(), staged)
		if err != nil {
			respondError(c, err)
			return
		}
		logo = &img
	}

	event, err := h.Events.Create(&req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := h.Events.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	resp, err := h.Events.List(queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) Filter(c *gin.Context) {
	var f dtos.EventFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query: " + err.Error()})
		return
	}
	resp, err := h.Events.Filter(&f, queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	event, err := h.Events.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully", "event": event})
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Events.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) UploadLogo(c *gin.Context) {
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

	logo, err := h.Events.UploadLogo(c.Request.Context(), id, staged)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event logo uploaded successfully",
		"logo":    logo,
	})
}

// ToggleInterest is the POST /api/events/mark-interested endpoint.
func (h *EventHandler) ToggleInterest(c *gin.Context) {
	var req dtos.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event ID"})
		return
	}

	resp, err := h.Events.ToggleInterest(auth.UserID(c), req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) Count(c *gin.Context) {
	count, err := h.Events.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
