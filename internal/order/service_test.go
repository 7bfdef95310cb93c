package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellpress/publisher-backend/internal/event"
)

type fakeRepository struct {
	orders map[string]*Order
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: map[string]*Order{}}
}

func (r *fakeRepository) Create(_ context.Context, o *Order) error {
	r.nextID++
	o.ID = string(rune('a' + r.nextID))
	r.orders[o.ID] = o
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *fakeRepository) List(_ context.Context, filter Filter) ([]*Order, int, error) {
	var out []*Order
	for _, o := range r.orders {
		if filter.UserID == "" || o.UserID == filter.UserID {
			out = append(out, o)
		}
	}
	return out, len(out), nil
}

// catalogStub serves a fixed set of events by ID.
type catalogStub struct {
	events map[string]*event.Event
}

func (s *catalogStub) GetByID(_ context.Context, id string) (*event.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, event.ErrNotFound
	}
	return e, nil
}

func (s *catalogStub) Create(context.Context, event.CreateRequest) (*event.Event, error) {
	panic("not used")
}
func (s *catalogStub) GetBySlug(context.Context, string) (*event.Event, error) { panic("not used") }
func (s *catalogStub) List(context.Context, event.Filter) ([]*event.Event, int, error) {
	panic("not used")
}
func (s *catalogStub) Update(context.Context, string, event.UpdateRequest) (*event.Event, error) {
	panic("not used")
}
func (s *catalogStub) Delete(context.Context, string) error { panic("not used") }

func newCatalog() *catalogStub {
	return &catalogStub{events: map[string]*event.Event{
		"ev-workshop": {ID: "ev-workshop", Title: "Summer Math Workshop", PriceCents: 2500},
		"ev-fair":     {ID: "ev-fair", Title: "Reading Fair", PriceCents: 0},
	}}
}

func TestServiceCreate(t *testing.T) {
	t.Run("prices lines from the catalog and totals them", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newCatalog())

		o, err := svc.Create(context.Background(), "u1", []ItemRequest{
			{EventID: "ev-workshop", Quantity: 2},
			{EventID: "ev-fair", Quantity: 1},
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, int64(5000), o.TotalCents)
		require.Len(t, o.Items, 2)
		assert.Equal(t, "Summer Math Workshop", o.Items[0].EventTitle)
		assert.Equal(t, int64(2500), o.Items[0].UnitPriceCents)
	})

	t.Run("rejects an empty checkout", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newCatalog())

		_, err := svc.Create(context.Background(), "u1", nil)
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newCatalog())

		_, err := svc.Create(context.Background(), "u1", []ItemRequest{
			{EventID: "ev-workshop", Quantity: 0},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unknown event maps to a 404-class error", func(t *testing.T) {
		svc := NewService(newFakeRepository(), newCatalog())

		_, err := svc.Create(context.Background(), "u1", []ItemRequest{
			{EventID: "ev-missing", Quantity: 1},
		})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestServiceGetByID(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newCatalog())

	o, err := svc.Create(context.Background(), "u1", []ItemRequest{
		{EventID: "ev-workshop", Quantity: 1},
	})
	require.NoError(t, err)

	t.Run("owner reads their order", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), "u1", o.ID)
		require.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
	})

	t.Run("another user is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "u2", o.ID)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("missing order is not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "u1", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
