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

// assetHandler handles HTTP requests related to assets and daily reviews.
type assetHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(ps portssvc.PortfolioSvcFacade) *assetHandler {
	return &assetHandler{
		portfolioService: ps,
	}
}

// registerAssetRoutes registers routes related to assets and daily records.
func registerAssetRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) {
	h := newAssetHandler(portfolioService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.PUT("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
		assets.POST("/:id/review", h.recordDailyReview)
	}

	records := rg.Group("/daily-records")
	{
		records.GET("", h.listDailyRecords)
		records.DELETE("/:date/:assetId", h.deleteDailyRecord)
	}
}

// createAsset godoc
// @Summary Register a new asset
// @Description Registers an asset; its current amount starts at the initial amount
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security ApiKeyAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.portfolioService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create asset in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List all assets
// @Description Retrieves every tracked asset
// @Tags assets
// @Produce  json
// @Success 200 {array} dto.AssetResponse
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security ApiKeyAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	assets, err := h.portfolioService.ListAssets(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Updates the provided fields of an asset; omitted fields are left unchanged
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to update asset"
// @Security ApiKeyAuth
// @Router /assets/{id} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.portfolioService.UpdateAsset(c.Request.Context(), assetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to update asset in service", slog.String("asset_id", assetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Deletes an asset and every daily record booked against it
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Security ApiKeyAuth
// @Router /assets/{id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	if err := h.portfolioService.DeleteAsset(c.Request.Context(), assetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to delete asset in service", slog.String("asset_id", assetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// recordDailyReview godoc
// @Summary Record a daily review
// @Description Books one day's profit/loss against the asset, replacing any record already present for that day
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   review body dto.DailyReviewRequest true "Review details"
// @Success 201 {object} dto.DailyRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to record review"
// @Security ApiKeyAuth
// @Router /assets/{id}/review [post]
func (h *assetHandler) recordDailyReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.DailyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordDailyReview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.portfolioService.RecordDailyReview(c.Request.Context(), assetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record daily review", slog.String("asset_id", assetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record review"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDailyRecordResponse(record))
}

// listDailyRecords godoc
// @Summary List daily records
// @Description Retrieves every daily review record across all assets
// @Tags daily-records
// @Produce  json
// @Success 200 {array} dto.DailyRecordResponse
// @Failure 500 {object} map[string]string "Failed to list daily records"
// @Security ApiKeyAuth
// @Router /daily-records [get]
func (h *assetHandler) listDailyRecords(c *gin.Context) {
	records, err := h.portfolioService.ListDailyRecords(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list daily records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list daily records"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDailyRecordResponse(records))
}

// deleteDailyRecord godoc
// @Summary Delete a daily record
// @Description Deletes the review record for one asset on one date; the asset's current amount is not rolled back
// @Tags daily-records
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Param   assetId path string true "Asset ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete daily record"
// @Security ApiKeyAuth
// @Router /daily-records/{date}/{assetId} [delete]
func (h *assetHandler) deleteDailyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	assetID := c.Param("assetId")

	if err := h.portfolioService.DeleteDailyRecord(c.Request.Context(), date, assetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Daily record not found"})
		} else {
			logger.Error("Failed to delete daily record", slog.String("asset_id", assetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete daily record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
