// File: handlers/quote.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotify/models"
	"quotify/services/quote"
	"quotify/utils"
)

// QuoteHandler exposes the price computation endpoint.
type QuoteHandler struct {
	Engine quote.QuoteEngine
}

func NewQuoteHandler(engine quote.QuoteEngine) *QuoteHandler {
	return &QuoteHandler{Engine: engine}
}

type quoteRequest struct {
	ItemID   string                  `json:"itemId" binding:"required"`
	Quantity int                     `json:"quantity"`
	AsOf     string                  `json:"asOf"` // RFC 3339, defaults to now
	Addons   []models.AddonSelection `json:"addons"`
}

// QuoteHandler handles POST /quotes. The response is the full price
// breakdown without any reservation side effect.
func (h *QuoteHandler) QuoteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	asOf := time.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, req.AsOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf, expected RFC 3339 timestamp"})
			return
		}
		asOf = parsed
	}

	breakdown, err := h.Engine.Quote(c.Request.Context(), req.ItemID, req.Quantity, asOf, req.Addons)
	if err != nil {
		logger.Warn("Quote failed", zap.String("itemID", req.ItemID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
