package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/dto"
	"github.com/wfbarn/wfbarn_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the read-only aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reporting := rg.Group("/reporting")
	{
		reporting.GET("/dashboard", h.dashboard)
		reporting.GET("/net-worth", h.netWorth)
		reporting.GET("/macro-curve", h.macroCurve)
	}
}

// dashboard godoc
// @Summary Get the dashboard summary
// @Description Retrieves portfolio totals, today's profit/loss, the month's budget position and the asset type breakdown
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.DashboardSummary
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security ApiKeyAuth
// @Router /reporting/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// netWorth godoc
// @Summary Get the net worth series
// @Description Retrieves one point per reviewed date: the total recorded balance across assets
// @Tags reporting
// @Produce  json
// @Success 200 {array} dto.NetWorthPoint
// @Failure 500 {object} map[string]string "Failed to build series"
// @Security ApiKeyAuth
// @Router /reporting/net-worth [get]
func (h *reportingHandler) netWorth(c *gin.Context) {
	series, err := h.reportingService.NetWorthSeries(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build net worth series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build series"})
		return
	}
	c.JSON(http.StatusOK, series)
}

// macroCurve godoc
// @Summary Get the macro indicator curve
// @Description Retrieves the recorded indicator values sorted by date
// @Tags reporting
// @Produce  json
// @Success 200 {array} dto.MacroRecordResponse
// @Failure 500 {object} map[string]string "Failed to build curve"
// @Security ApiKeyAuth
// @Router /reporting/macro-curve [get]
func (h *reportingHandler) macroCurve(c *gin.Context) {
	records, err := h.reportingService.MacroCurve(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build macro curve", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build curve"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListMacroRecordResponse(records))
}
