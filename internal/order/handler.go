package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/order
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		OrderCode string            `json:"orderCode"`
		Customer  Customer          `json:"customer"`
		Items     []json.RawMessage `json:"items"`
		Total     float64           `json:"total"`
		CreatedAt time.Time         `json:"createdAt"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o := Order{
		Code:      req.OrderCode,
		Customer:  req.Customer,
		Items:     req.Items,
		Total:     req.Total,
		CreatedAt: req.CreatedAt,
	}

	if err := h.service.Place(c.Request.Context(), &o); err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Giỏ hàng trống"})
		case errors.Is(err, ErrIncompleteCustomer):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu thông tin khách hàng"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Server error",
				"detail":    err.Error(),
				"requestId": c.GetString("requestID"),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "orderId": o.Code})
}

// --------------------------------------------------
// GET /api/admin/orders
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Server error",
			"detail":    err.Error(),
			"requestId": c.GetString("requestID"),
		})
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// GET /api/admin/customers
// --------------------------------------------------
func (h *Handler) Customers(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Server error",
			"detail":    err.Error(),
			"requestId": c.GetString("requestID"),
		})
		return
	}
	if customers == nil {
		customers = []Customer{}
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
