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

type BlogHandler struct {
	Blogs     *services.BlogService
	UploadDir string
}

func NewBlogHandler(blogs *services.BlogService, uploadDir string) *BlogHandler {
	return &BlogHandler{Blogs: blogs, UploadDir: uploadDir}
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req dtos.BlogRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	var image *models.Image
	if file, err := c.FormFile("image"); err == nil {
		staged, err := media.Stage(c, file, h.UploadDir)
		if err != nil {
			respondError(c, err)
			return
		}
		defer media.Discard(staged)

		img, err := h.Blogs.Uploader.Upload(c.Request.Context(), staged)
		if err != nil {
			respondError(c, err)
			return
		}
		image = &img
	}

	blog, err := h.Blogs.Create(auth.UserID(c), &req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) List(c *gin.Context) {
	resp, err := h.Blogs.List(queryInt(c, "page", 1), queryInt(c, "pageSize", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	blog, err := h.Blogs.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dtos.BlogUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	blog, err := h.Blogs.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Blogs.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func (h *BlogHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	file, err := c.FormFile("image")
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

	image, err := h.Blogs.UploadImage(c.Request.Context(), id, staged)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Blog image uploaded successfully",
		"image":   image,
	})
}
