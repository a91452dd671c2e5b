package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// settingsHandler handles HTTP requests for financial settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(settingsService portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
	}
}

// getSettings godoc
// @Summary Get the company's financial settings
// @Description Returns the stored settings, or the defaults when none were configured
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse "The settings"
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, _, ok := authContext(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update the company's financial settings
// @Description Replaces the settings wholesale; executive roles only
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "New settings"
// @Success 200 {object} dto.SettingsResponse "The updated settings"
// @Failure 400 {object} map[string]string "Invalid request or negative threshold"
// @Failure 403 {object} map[string]string "Executive role required"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	companyID, actor, ok := authContext(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), companyID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// registerSettingsRoutes registers settings specific routes
func registerSettingsRoutes(group *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	settingsHandler := newSettingsHandler(settingsService)

	settings := group.Group("/settings")
	{
		settings.GET("", settingsHandler.getSettings)
		settings.PUT("", settingsHandler.updateSettings)
	}
}
