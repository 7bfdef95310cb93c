package order

import (
	"net/http"
	"time"

	"github.com/inkwellpress/publisher-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "order not found")
	ErrEventNotFound    = apperror.New(http.StatusNotFound, "event not found")
	ErrEmptyOrder       = apperror.New(http.StatusBadRequest, "order must contain at least one item")
	ErrInvalidQuantity  = apperror.New(http.StatusBadRequest, "item quantity must be at least 1")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Order is a checkout record owned by a user. Line items capture the
// event price at order time so later price edits do not rewrite history.
type Order struct {
	ID         string
	UserID     string
	Status     Status
	TotalCents int64
	Items      []Item
	CreatedAt  time.Time
}

// Item is one order line referencing a catalog event.
type Item struct {
	EventID        string
	EventTitle     string
	Quantity       int
	UnitPriceCents int64
}

// Filter defines parameters for listing a user's orders.
type Filter struct {
	UserID string
	Page   int
	Limit  int
}
