package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/dto"
)

// syncHandler handles HTTP requests that drive remote synchronization.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

// registerSyncRoutes registers the sync trigger and status routes. The
// trigger is rate limited; every accepted request costs a remote round trip.
func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade, rateLimit gin.HandlerFunc) {
	h := &syncHandler{syncService: syncService}

	sync := rg.Group("/sync")
	{
		sync.POST("", rateLimit, h.triggerSync)
		sync.GET("/status", h.syncStatus)
	}
}

// triggerSync godoc
// @Summary Trigger a sync run
// @Description Starts a pull-merge-push cycle in the background. Returns 202 when started, 409 when a run is already in flight.
// @Tags sync
// @Produce  json
// @Success 202 {object} dto.SyncStatusResponse
// @Failure 409 {object} dto.SyncStatusResponse "Sync already running"
// @Failure 429 {object} map[string]string "Too many requests"
// @Security ApiKeyAuth
// @Router /sync [post]
func (h *syncHandler) triggerSync(c *gin.Context) {
	started := h.syncService.RequestSync()
	status := dto.ToSyncStatusResponse(h.syncService.Status())
	if !started {
		c.JSON(http.StatusConflict, status)
		return
	}
	c.JSON(http.StatusAccepted, status)
}

// syncStatus godoc
// @Summary Get the sync status
// @Description Retrieves the current synchronization stage snapshot
// @Tags sync
// @Produce  json
// @Success 200 {object} dto.SyncStatusResponse
// @Security ApiKeyAuth
// @Router /sync/status [get]
func (h *syncHandler) syncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSyncStatusResponse(h.syncService.Status()))
}
