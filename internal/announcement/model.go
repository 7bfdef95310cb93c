package announcement

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("announcement not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

// Announcement represents a site-wide notice published by the editorial
// team.
type Announcement struct {
	ID          string
	Title       string
	Content     string
	Date        time.Time
	IsImportant bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing announcements. A nil Important
// leaves that field unconstrained.
type Filter struct {
	Important *bool
	Page      int
	Limit     int
}
