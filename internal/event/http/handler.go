package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwellpress/publisher-backend/internal/event"
	"github.com/inkwellpress/publisher-backend/internal/pkg/request"
	"github.com/inkwellpress/publisher-backend/internal/pkg/response"
)

type Handler struct {
	service event.Service
}

func NewHandler(service event.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := event.Filter{
		Category: req.Category,
		Status:   req.Status,
		Page:     req.Page,
		Limit:    req.Limit,
	}
	if req.Featured != "" {
		v := req.Featured == "true"
		filter.Featured = &v
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	items := make([]EventResponse, len(list))
	for i, e := range list {
		items[i] = NewEventResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get event"})
		}
		return
	}

	c.JSON(http.StatusOK, NewEventResponse(e))
}

func (h *Handler) GetBySlug(c *gin.Context) {
	var req BySlugRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	e, err := h.service.GetBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get event"})
		}
		return
	}

	c.JSON(http.StatusOK, NewEventResponse(e))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := event.CreateRequest{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Status:      event.Status(body.Status),
		Featured:    body.Featured,
		Date:        body.Date,
		Location:    body.Location,
		PriceCents:  body.PriceCents,
		ImageURL:    body.ImageURL,
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrTitleRequired),
			errors.Is(err, event.ErrDateRequired),
			errors.Is(err, event.ErrInvalidStatus),
			errors.Is(err, event.ErrInvalidPrice),
			errors.Is(err, event.ErrEmptyTitleSlug):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, event.ErrSlugConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewEventResponse(e))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := event.UpdateRequest{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Featured:    body.Featured,
		Date:        body.Date,
		Location:    body.Location,
		PriceCents:  body.PriceCents,
		ImageURL:    body.ImageURL,
	}
	if body.Status != nil {
		s := event.Status(*body.Status)
		req.Status = &s
	}

	e, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		case errors.Is(err, event.ErrTitleRequired),
			errors.Is(err, event.ErrDateRequired),
			errors.Is(err, event.ErrInvalidStatus),
			errors.Is(err, event.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, NewEventResponse(e))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, event.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
