package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellpress/publisher-backend/internal/announcement"
	"github.com/inkwellpress/publisher-backend/internal/pkg/response"
)

type stubService struct {
	list       []*announcement.Announcement
	total      int
	listFilter announcement.Filter
	got        *announcement.Announcement
	err        error
}

func (s *stubService) Create(_ context.Context, req announcement.CreateRequest) (*announcement.Announcement, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &announcement.Announcement{
		ID:          "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		Title:       req.Title,
		Content:     req.Content,
		Date:        req.Date,
		IsImportant: req.IsImportant,
	}, nil
}

func (s *stubService) GetByID(_ context.Context, _ string) (*announcement.Announcement, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.got, nil
}

func (s *stubService) List(_ context.Context, filter announcement.Filter) ([]*announcement.Announcement, int, error) {
	s.listFilter = filter
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.list, s.total, nil
}

func passthrough(c *gin.Context) { c.Next() }

func newTestRouter(svc announcement.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc), passthrough, passthrough)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListAnnouncements(t *testing.T) {
	t.Run("defaults with no filter", func(t *testing.T) {
		svc := &stubService{
			list: []*announcement.Announcement{{
				ID:    "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
				Title: "Term dates",
				Date:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			}},
			total: 1,
		}
		r := newTestRouter(svc)

		w := doRequest(r, "GET", "/v1/announcements", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, 1, svc.listFilter.Page)
		assert.Equal(t, 10, svc.listFilter.Limit)
		assert.Nil(t, svc.listFilter.Important)

		var resp response.PageResponse[AnnouncementResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 1, resp.Pagination.TotalCount)
	})

	t.Run("important filter set only from literal true", func(t *testing.T) {
		svc := &stubService{}
		r := newTestRouter(svc)

		doRequest(r, "GET", "/v1/announcements?important=true", nil)
		require.NotNil(t, svc.listFilter.Important)
		assert.True(t, *svc.listFilter.Important)

		doRequest(r, "GET", "/v1/announcements?important=false", nil)
		require.NotNil(t, svc.listFilter.Important)
		assert.False(t, *svc.listFilter.Important)
	})

	t.Run("rejects non-boolean important", func(t *testing.T) {
		r := newTestRouter(&stubService{})
		w := doRequest(r, "GET", "/v1/announcements?important=1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure yields generic 500", func(t *testing.T) {
		svc := &stubService{err: errors.New("timeout")}
		r := newTestRouter(svc)

		w := doRequest(r, "GET", "/v1/announcements", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "timeout")
	})
}

func TestGetAnnouncement(t *testing.T) {
	const id = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

	t.Run("found", func(t *testing.T) {
		svc := &stubService{got: &announcement.Announcement{ID: id, Title: "Term dates"}}
		r := newTestRouter(svc)

		w := doRequest(r, "GET", "/v1/announcements/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Term dates")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{err: announcement.ErrNotFound}
		r := newTestRouter(svc)

		w := doRequest(r, "GET", "/v1/announcements/"+id, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "announcement not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		r := newTestRouter(&stubService{})
		w := doRequest(r, "GET", "/v1/announcements/42", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateAnnouncement(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r := newTestRouter(&stubService{})

		payload := CreateAnnouncementRequest{
			Title:       "School closed",
			Content:     "Closed for maintenance on Friday.",
			IsImportant: true,
		}
		w := doRequest(r, "POST", "/v1/announcements", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp AnnouncementResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.True(t, resp.IsImportant)
	})

	t.Run("missing required fields", func(t *testing.T) {
		r := newTestRouter(&stubService{})

		w := doRequest(r, "POST", "/v1/announcements", map[string]any{"title": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code, "content required")

		w = doRequest(r, "POST", "/v1/announcements", map[string]any{"content": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code, "title required")
	})

	t.Run("domain validation maps to 400", func(t *testing.T) {
		svc := &stubService{err: announcement.ErrTitleRequired}
		r := newTestRouter(svc)

		payload := CreateAnnouncementRequest{Title: "  ", Content: "x"}
		w := doRequest(r, "POST", "/v1/announcements", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
