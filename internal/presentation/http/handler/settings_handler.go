package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/structurachem/scpl-api/internal/application/service"
	"github.com/structurachem/scpl-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the current company settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings replaces the company settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CompanyName      string   `json:"company_name" binding:"required"`
		CompanyShortName string   `json:"company_short_name"`
		CompanyNTN       string   `json:"company_ntn"`
		LogoURL          string   `json:"logo_url"`
		GSTRate          float64  `json:"gst_rate"`
		SRBRate          float64  `json:"srb_rate"`
		Categories       []string `json:"categories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), actor, &service.UpdateSettingsInput{
		CompanyName:      req.CompanyName,
		CompanyShortName: req.CompanyShortName,
		CompanyNTN:       req.CompanyNTN,
		LogoURL:          req.LogoURL,
		GSTRate:          req.GSTRate,
		SRBRate:          req.SRBRate,
		Categories:       req.Categories,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
