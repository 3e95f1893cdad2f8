package suggest

import (
	"errors"
	"net/http"

	"github.com/Anhpro1412/Menu-web/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// --------------------------------------------------
// POST /api/suggest
// --------------------------------------------------
func (h *Handler) Suggest(c *gin.Context) {
	var req struct {
		Message string      `json:"message"`
		Menu    []menu.Item `json:"menu"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu menu items"})
		return
	}

	result, err := h.engine.Suggest(c.Request.Context(), req.Message, req.Menu)
	if err != nil {
		if errors.Is(err, ErrEmptyMenu) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu menu items"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Server error",
			"detail":    err.Error(),
			"requestId": c.GetString("requestID"),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
