package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/dto"
	"github.com/wfbarn/wfbarn_app/internal/middleware"
)

// settingsHandler handles HTTP requests related to preferences and the sync
// configuration.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.POST("/dark-mode", h.toggleDarkMode)
		settings.GET("/sync", h.getSyncConfig)
		settings.PUT("/sync", h.updateSyncConfig)
	}
}

// getSettings godoc
// @Summary Get settings
// @Description Retrieves the display preference and the redacted sync configuration
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Security ApiKeyAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, dto.SettingsResponse{
		IsDarkMode: h.settingsService.IsDarkMode(ctx),
		SyncConfig: dto.ToSyncConfigResponse(h.settingsService.GetSyncConfig(ctx)),
	})
}

// toggleDarkMode godoc
// @Summary Toggle dark mode
// @Description Flips the dark mode preference and returns the new value
// @Tags settings
// @Produce  json
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string "Failed to toggle dark mode"
// @Security ApiKeyAuth
// @Router /settings/dark-mode [post]
func (h *settingsHandler) toggleDarkMode(c *gin.Context) {
	dark, err := h.settingsService.ToggleDarkMode(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to toggle dark mode", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle dark mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isDarkMode": dark})
}

// getSyncConfig godoc
// @Summary Get the sync configuration
// @Description Retrieves the WebDAV remote configuration with the password redacted
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SyncConfigResponse
// @Security ApiKeyAuth
// @Router /settings/sync [get]
func (h *settingsHandler) getSyncConfig(c *gin.Context) {
	cfg := h.settingsService.GetSyncConfig(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToSyncConfigResponse(cfg))
}

// updateSyncConfig godoc
// @Summary Update the sync configuration
// @Description Updates the provided fields of the WebDAV remote configuration; omitted fields are left unchanged
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   config body dto.UpdateSyncConfigRequest true "Fields to update"
// @Success 200 {object} dto.SyncConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update sync config"
// @Security ApiKeyAuth
// @Router /settings/sync [put]
func (h *settingsHandler) updateSyncConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSyncConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSyncConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.settingsService.UpdateSyncConfig(c.Request.Context(), req.ToSyncConfigUpdate())
	if err != nil {
		logger.Error("Failed to update sync config in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sync config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncConfigResponse(cfg))
}
