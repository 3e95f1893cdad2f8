package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/admin/menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Server error",
			"detail":    err.Error(),
			"requestId": c.GetString("requestID"),
		})
		return
	}
	if items == nil {
		items = []Item{}
	}
	c.JSON(http.StatusOK, gin.H{"menu": items})
}

// --------------------------------------------------
// POST /api/admin/menu
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Category    string  `json:"cat"`
		Description string  `json:"desc"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.service.Add(c.Request.Context(), Item{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tên món hoặc giá không hợp lệ"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Server error",
			"detail":    err.Error(),
			"requestId": c.GetString("requestID"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
