package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	created []*Announcement
}

func (r *fakeRepository) Create(_ context.Context, a *Announcement) error {
	a.ID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	r.created = append(r.created, a)
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Announcement, error) {
	for _, a := range r.created {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) List(_ context.Context, _ Filter) ([]*Announcement, int, error) {
	return r.created, len(r.created), nil
}

func TestServiceCreate(t *testing.T) {
	t.Run("defaults date to now when omitted", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := NewService(repo)

		before := time.Now().UTC()
		a, err := svc.Create(context.Background(), CreateRequest{
			Title:   "School closed",
			Content: "Closed for maintenance on Friday.",
		})
		require.NoError(t, err)

		assert.False(t, a.Date.Before(before))
		assert.False(t, a.Date.After(time.Now().UTC()))
	})

	t.Run("keeps explicit date", func(t *testing.T) {
		svc := NewService(&fakeRepository{})

		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		a, err := svc.Create(context.Background(), CreateRequest{
			Title:   "Term dates",
			Content: "Autumn term starts September 1st.",
			Date:    date,
		})
		require.NoError(t, err)
		assert.Equal(t, date, a.Date)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		svc := NewService(&fakeRepository{})

		_, err := svc.Create(context.Background(), CreateRequest{Title: "  ", Content: "x"})
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		svc := NewService(&fakeRepository{})

		_, err := svc.Create(context.Background(), CreateRequest{Title: "x", Content: " "})
		assert.ErrorIs(t, err, ErrContentRequired)
	})
}
