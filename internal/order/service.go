package order

import (
	"context"
	"errors"

	"github.com/inkwellpress/publisher-backend/internal/event"
)

// ItemRequest is one requested line in a checkout.
type ItemRequest struct {
	EventID  string
	Quantity int
}

type Service interface {
	// Create checks out the given items for the user, pricing each line
	// from the current catalog.
	Create(ctx context.Context, userID string, items []ItemRequest) (*Order, error)
	// GetByID returns the order, enforcing that it belongs to userID.
	GetByID(ctx context.Context, userID, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int, error)
}

type service struct {
	repo     Repository
	eventSvc event.Service
}

func NewService(repo Repository, eventSvc event.Service) Service {
	return &service{repo: repo, eventSvc: eventSvc}
}

func (s *service) Create(ctx context.Context, userID string, items []ItemRequest) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	o := &Order{
		UserID: userID,
		Status: StatusPending,
	}

	for _, req := range items {
		if req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		e, err := s.eventSvc.GetByID(ctx, req.EventID)
		if err != nil {
			if errors.Is(err, event.ErrNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, err
		}

		o.Items = append(o.Items, Item{
			EventID:        e.ID,
			EventTitle:     e.Title,
			Quantity:       req.Quantity,
			UnitPriceCents: e.PriceCents,
		})
		o.TotalCents += e.PriceCents * int64(req.Quantity)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return o, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Order, int, error) {
	return s.repo.List(ctx, filter)
}
