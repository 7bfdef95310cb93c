package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwellpress/publisher-backend/internal/auth"
	"github.com/inkwellpress/publisher-backend/internal/order"
	"github.com/inkwellpress/publisher-backend/internal/pkg/request"
	"github.com/inkwellpress/publisher-backend/internal/pkg/response"
)

type Handler struct {
	service order.Service
}

func NewHandler(service order.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	items := make([]order.ItemRequest, len(body.Items))
	for i, it := range body.Items {
		items[i] = order.ItemRequest{EventID: it.EventID, Quantity: it.Quantity}
	}

	o, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), items)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewOrderResponse(o))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewOrderResponse(o))
}

func (h *Handler) List(c *gin.Context) {
	var req ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := order.Filter{
		UserID: auth.GetUserID(c),
		Page:   req.Page,
		Limit:  req.Limit,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	items := make([]OrderResponse, len(list))
	for i, o := range list {
		items[i] = NewOrderResponse(o)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}
