package event

import (
	"context"
	"strings"
	"time"

	"github.com/inkwellpress/publisher-backend/internal/pkg/slug"
)

// CreateRequest carries a new event's fields. Status defaults to
// upcoming when empty.
type CreateRequest struct {
	Title       string
	Description string
	Category    string
	Status      Status
	Featured    bool
	Date        time.Time
	Location    string
	PriceCents  int64
	ImageURL    string
}

// UpdateRequest carries merge semantics: nil fields keep their current
// values.
type UpdateRequest struct {
	Title       *string
	Description *string
	Category    *string
	Status      *Status
	Featured    *bool
	Date        *time.Time
	Location    *string
	PriceCents  *int64
	ImageURL    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, s string) (*Event, error)
	List(ctx context.Context, filter Filter) ([]*Event, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if req.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	status := req.Status
	if status == "" {
		status = StatusUpcoming
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	// Assign a slug unique within the collection.
	existing, err := s.repo.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	sl := slug.Unique(req.Title, existing)
	if sl == "" {
		return nil, ErrEmptyTitleSlug
	}

	e := &Event{
		Title:       req.Title,
		Slug:        sl,
		Description: req.Description,
		Category:    req.Category,
		Status:      status,
		Featured:    req.Featured,
		Date:        req.Date,
		Location:    req.Location,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, sl string) (*Event, error) {
	return s.repo.GetBySlug(ctx, sl)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Event, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		// The slug stays stable across title edits so published URLs
		// keep working.
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		e.Status = *req.Status
	}
	if req.Featured != nil {
		e.Featured = *req.Featured
	}
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, ErrDateRequired
		}
		e.Date = *req.Date
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrInvalidPrice
		}
		e.PriceCents = *req.PriceCents
	}
	if req.ImageURL != nil {
		e.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
