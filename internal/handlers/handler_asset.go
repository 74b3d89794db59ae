package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/dto"
	"github.com/lunebudget/true_cost_app/internal/middleware"
)

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assetService portssvc.AssetService
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetService) *assetHandler {
	return &assetHandler{
		assetService: as,
	}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetService) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.GET("/:asset_id", h.getAsset)
		assets.POST("/:asset_id/dispose", h.disposeAsset)
		assets.DELETE("/:asset_id", h.deleteAsset)
	}
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves all assets with their depreciation status, newest purchase first
// @Tags assets
// @Produce  json
// @Param   includeDisposed query bool false "Include disposed assets" default(false)
// @Success 200 {array} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeDisposed, err := strconv.ParseBool(c.DefaultQuery("includeDisposed", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "includeDisposed must be true or false"})
		return
	}

	logger.Info("Received request to list assets", slog.Bool("include_disposed", includeDisposed))

	assets, err := h.assetService.ListAssets(c.Request.Context(), includeDisposed)
	if err != nil {
		logger.Error("Failed to list assets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	logger.Info("Assets listed successfully", slog.Int("count", len(assets)))
	c.JSON(http.StatusOK, dto.ToAssetResponses(assets, time.Now()))
}

// getAsset godoc
// @Summary Get an asset
// @Description Retrieves a single asset with its depreciation status
// @Tags assets
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Router /assets/{asset_id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("asset_id")

	logger = logger.With(slog.String("asset_id", assetID))
	logger.Info("Received request to get asset")

	asset, err := h.assetService.GetAsset(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get asset from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		}
		return
	}

	logger.Info("Asset retrieved successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset, time.Now()))
}

// disposeAsset godoc
// @Summary Dispose an asset
// @Description Marks an asset as disposed, freezing its accumulated depreciation and excluding it from future batch runs
// @Tags assets
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Success 204 "Asset disposed"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already disposed"
// @Failure 500 {object} map[string]string "Failed to dispose asset"
// @Router /assets/{asset_id}/dispose [post]
func (h *assetHandler) disposeAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("asset_id")

	logger = logger.With(slog.String("asset_id", assetID))
	logger.Info("Received request to dispose asset")

	if err := h.assetService.DisposeAsset(c.Request.Context(), assetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Attempted to dispose an already disposed asset")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to dispose asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispose asset"})
		}
		return
	}

	logger.Info("Asset disposed successfully")
	c.Status(http.StatusNoContent)
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Deletes an asset together with its depreciation records and linked transactions
// @Tags assets
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Success 204 "Asset deleted"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Router /assets/{asset_id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("asset_id")

	logger = logger.With(slog.String("asset_id", assetID))
	logger.Info("Received request to delete asset")

	if err := h.assetService.DeleteAsset(c.Request.Context(), assetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to delete asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		}
		return
	}

	logger.Info("Asset deleted successfully")
	c.Status(http.StatusNoContent)
}
