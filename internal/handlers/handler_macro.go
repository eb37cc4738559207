package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portssvc "github.com/wfbarn/wfbarn_app/internal/core/ports/services"
	"github.com/wfbarn/wfbarn_app/internal/dto"
	"github.com/wfbarn/wfbarn_app/internal/middleware"
)

// macroHandler handles HTTP requests related to macro indicator records.
type macroHandler struct {
	macroService portssvc.MacroSvcFacade
}

// registerMacroRoutes registers routes related to macro records.
func registerMacroRoutes(rg *gin.RouterGroup, macroService portssvc.MacroSvcFacade) {
	h := &macroHandler{macroService: macroService}

	records := rg.Group("/macro-records")
	{
		records.PUT("", h.upsertMacroRecord)
		records.GET("", h.listMacroRecords)
		records.DELETE("/:date", h.deleteMacroRecord)
	}
}

// upsertMacroRecord godoc
// @Summary Record a macro indicator value
// @Description Upserts the indicator value for a date; date defaults to today
// @Tags macro-records
// @Accept  json
// @Produce  json
// @Param   record body dto.UpsertMacroRecordRequest true "Record details"
// @Success 200 {object} dto.MacroRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record value"
// @Security ApiKeyAuth
// @Router /macro-records [put]
func (h *macroHandler) upsertMacroRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertMacroRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertMacroRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.macroService.UpsertMacroRecord(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert macro record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record value"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMacroRecordResponse(record))
}

// listMacroRecords godoc
// @Summary List macro records
// @Description Retrieves every recorded indicator value
// @Tags macro-records
// @Produce  json
// @Success 200 {array} dto.MacroRecordResponse
// @Failure 500 {object} map[string]string "Failed to list macro records"
// @Security ApiKeyAuth
// @Router /macro-records [get]
func (h *macroHandler) listMacroRecords(c *gin.Context) {
	records, err := h.macroService.ListMacroRecords(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list macro records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list macro records"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListMacroRecordResponse(records))
}

// deleteMacroRecord godoc
// @Summary Delete a macro record
// @Description Deletes the indicator record for one date
// @Tags macro-records
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete macro record"
// @Security ApiKeyAuth
// @Router /macro-records/{date} [delete]
func (h *macroHandler) deleteMacroRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := h.macroService.DeleteMacroRecord(c.Request.Context(), date); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Macro record not found"})
		} else {
			logger.Error("Failed to delete macro record in service", slog.String("date", date.String()), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete macro record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
