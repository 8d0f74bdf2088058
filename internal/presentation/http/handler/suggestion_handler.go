package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/structurachem/scpl-api/internal/presentation/http/dto/response"
	"github.com/structurachem/scpl-api/pkg/suggest"
)

// SuggestionHandler serves drafted text for proposal narrative sections
type SuggestionHandler struct {
	suggester suggest.Suggester
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggester suggest.Suggester) *SuggestionHandler {
	return &SuggestionHandler{suggester: suggester}
}

// Suggest drafts text for one narrative field. The endpoint never fails
// on generation problems; fallback text is returned instead.
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req struct {
		Field        string   `json:"field" binding:"required"`
		Subject      string   `json:"subject"`
		CustomerName string   `json:"customer_name"`
		Products     []string `json:"products"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	text := h.suggester.Suggest(c.Request.Context(), suggest.Field(req.Field), suggest.Input{
		Subject:      req.Subject,
		CustomerName: req.CustomerName,
		Products:     req.Products,
	})

	response.OK(c, "Suggestion generated", gin.H{
		"field": req.Field,
		"text":  text,
	})
}
