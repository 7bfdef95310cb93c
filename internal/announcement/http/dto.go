package http

import (
	"time"

	"github.com/inkwellpress/publisher-backend/internal/announcement"
	"github.com/inkwellpress/publisher-backend/internal/pkg/request"
)

type AnnouncementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Date        time.Time `json:"date"`
	IsImportant bool      `json:"is_important"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAnnouncementResponse(a *announcement.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Date:        a.Date,
		IsImportant: a.IsImportant,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ListAnnouncementsRequest defines query parameters for listing
// announcements. Important is a raw string compared against the literal
// "true".
type ListAnnouncementsRequest struct {
	request.ListParams
	Important string `form:"important" binding:"omitempty,oneof=true false"`
}

type CreateAnnouncementRequest struct {
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Date        time.Time `json:"date"`
	IsImportant bool      `json:"is_important"`
}
