package http

import (
	"time"

	"github.com/inkwellpress/publisher-backend/internal/event"
	"github.com/inkwellpress/publisher-backend/internal/pkg/request"
)

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	PriceCents  int64     `json:"price_cents"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEventResponse(e *event.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Category:    e.Category,
		Status:      string(e.Status),
		Featured:    e.Featured,
		Date:        e.Date,
		Location:    e.Location,
		PriceCents:  e.PriceCents,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ListEventsRequest defines query parameters for listing events.
// Featured is kept as a raw string: the filter constrains on equality
// with the literal "true".
type ListEventsRequest struct {
	request.ListParams
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Featured string `form:"featured" binding:"omitempty,oneof=true false"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Featured    bool      `json:"featured"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	PriceCents  int64     `json:"price_cents" binding:"omitempty,min=0"`
	ImageURL    string    `json:"image_url"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Status      *string    `json:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Featured    *bool      `json:"featured"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	PriceCents  *int64     `json:"price_cents" binding:"omitempty,min=0"`
	ImageURL    *string    `json:"image_url"`
}

// BySlugRequest binds the slug path parameter for catalog lookups.
type BySlugRequest struct {
	Slug string `uri:"slug" binding:"required"`
}
