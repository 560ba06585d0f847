package controllers

import (
	"github.com/gin-gonic/gin"

	"naoh-aquatics/models"
	"naoh-aquatics/repositories"
)

type SettingsController struct {
	settingsRepo *repositories.SettingsRepository
}

func NewSettingsController() *SettingsController {
	return &SettingsController{settingsRepo: repositories.NewSettingsRepository()}
}

// GetSettings godoc
// @Summary Get site settings
// @Description Get display branding (site name, logo)
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Response
// @Router /settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctrl.settingsRepo.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve settings", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Settings retrieved", Data: settings})
}

// UpdateSettings godoc
// @Summary Update site settings
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateSettingsRequest true "Settings"
// @Success 200 {object} models.Response
// @Router /admin/settings [patch]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	settings, err := ctrl.settingsRepo.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to load settings", Error: err.Error()})
		return
	}

	if req.SiteName != "" {
		settings.SiteName = req.SiteName
	}
	if req.Tagline != nil {
		settings.Tagline = *req.Tagline
	}
	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}

	if err := ctrl.settingsRepo.UpdateSettings(c.Request.Context(), settings); err != nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update settings", Error: err.Error()})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Settings updated", Data: settings})
}
