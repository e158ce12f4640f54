package dtos

import "github.com/workhive/workhive-backend/internal/models"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateUserRequest carries only the profile fields the caller wants to
// change; nil/empty fields are left untouched.
type UpdateUserRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Bio          string  `json:"bio"`
	JobTitle     string  `json:"job_title"`
	Location     string  `json:"location"`
	ContactPhone string  `json:"contact_phone"`
	ContactEmail string  `json:"contact_email"`
	LinkedIn     string  `json:"linkedin"`
	GitHub       string  `json:"github"`
	Twitter      string  `json:"twitter"`

	Skills         []string         `json:"skills"`
	Experience     []string         `json:"experience"`
	Education      []string         `json:"education"`
	Projects       []models.Project `json:"projects"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
	Interests      []string         `json:"interests"`
}
