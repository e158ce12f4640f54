package dtos

import (
	"time"

	"github.com/workhive/workhive-backend/internal/models"
)

type EventRequest struct {
	Title       string    `form:"title" json:"title" binding:"required"`
	Description string    `form:"description" json:"description" binding:"required"`
	Date        time.Time `form:"date" json:"date" binding:"required" time_format:"2006-01-02"`
	Location    string    `form:"location" json:"location" binding:"required"`
	CompanyName string    `form:"company_name" json:"company_name"`
}

type EventFilter struct {
	Title    string `form:"title"`
	Location string `form:"location"`
	Company  string `form:"company"`
	Date     string `form:"date"`
}

type EventListResponse struct {
	Events      []models.Event `json:"events"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalEvents int64          `json:"totalEvents"`
}

type InterestRequest struct {
	EventID uint `json:"eventId" binding:"required"`
}

// InterestResponse returns the caller's current interest list, the one
// side this relationship is indexed on.
type InterestResponse struct {
	Message          string `json:"message"`
	Interested       bool   `json:"interested"`
	InterestedEvents []uint `json:"interestedEvents"`
}
