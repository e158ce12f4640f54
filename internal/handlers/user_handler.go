package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/media"
	"github.com/workhive/workhive-backend/internal/services"
)

type UserHandler struct {
	Users     *services.UserService
	UploadDir string
}

func NewUserHandler(users *services.UserService, uploadDir string) *UserHandler {
	return &UserHandler{Users: users, UploadDir: uploadDir}
}

// Register is the POST /api/users/register endpoint.
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	resp, err := h.Users.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login is the POST /api/users/login endpoint.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	resp, err := h.Users.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.Users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update modifies a profile. Callers may only update themselves.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if id != auth.UserID(c) {
		respondError(c, apperr.Forbidden("cannot update another user"))
		return
	}

	var req dtos.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if id != auth.UserID(c) {
		respondError(c, apperr.Forbidden("cannot delete another user"))
		return
	}
	if err := h.Users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// UploadProfilePhoto stages the multipart file, pushes it to the media
// host, and stores the returned (url, publicId) pair.
func (h *UserHandler) UploadProfilePhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
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

	photo, err := h.Users.SetProfilePhoto(c.Request.Context(), auth.UserID(c), staged)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Profile photo uploaded successfully",
		"profilePhoto": photo,
	})
}
