package event

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("event not found")
	ErrTitleRequired  = errors.New("title is required")
	ErrDateRequired   = errors.New("date is required")
	ErrInvalidStatus  = errors.New("invalid event status")
	ErrSlugConflict   = errors.New("slug already in use")
	ErrInvalidPrice   = errors.New("price must not be negative")
	ErrEmptyTitleSlug = errors.New("title does not produce a usable slug")
)

// Status enumerates the lifecycle of a catalog event.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Event represents a catalog entry: a workshop, webinar, book launch or
// similar dated happening published on the site.
type Event struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Category    string
	Status      Status
	Featured    bool
	Date        time.Time
	Location    string
	PriceCents  int64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing events. Only set fields
// constrain the query; all constraints are combined with AND equality.
type Filter struct {
	Category string
	Status   string
	Featured *bool
	Page     int
	Limit    int
}
