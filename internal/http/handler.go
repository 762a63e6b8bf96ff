package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stevenmunoz/wego-sub001/internal/http/middleware"
	"github.com/stevenmunoz/wego-sub001/internal/model"
	"github.com/stevenmunoz/wego-sub001/internal/service"
)

type Handler struct {
	reports *service.ReportService
	imports *service.ImportService
	log     zerolog.Logger
}

func NewHandler(reports *service.ReportService, imports *service.ImportService, log zerolog.Logger) *Handler {
	return &Handler{reports: reports, imports: imports, log: log}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	reports := r.Group("/reports")
	reports.Use(authMiddleware)
	reports.GET("/overview", h.getOverview)
	reports.GET("/finance", h.getVehicleFinance)

	imports := r.Group("/imports")
	imports.Use(authMiddleware)
	imports.POST("/receipts", h.postImportReceipts)
}

func (h *Handler) getOverview(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := h.parseReportFilter(c)

	metrics, err := h.reports.GetOverview(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(metrics))
}

func (h *Handler) getVehicleFinance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := h.parseReportFilter(c)

	report, err := h.reports.GetVehicleFinance(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(report))
}

type importReceiptsRequest struct {
	DriverID uuid.UUID `json:"driver_id" binding:"required"`
	Receipts []string  `json:"receipts" binding:"required"`
}

func (h *Handler) postImportReceipts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req importReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	result, err := h.imports.ImportReceipts(c.Request.Context(), principal, req.DriverID, req.Receipts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().
		Int("imported", len(result.Imported)).
		Int("skipped", len(result.Skipped)).
		Msg("receipts imported")

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) parseReportFilter(c *gin.Context) model.ReportFilter {
	filter := model.ReportFilter{}

	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		if parsed, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filter.Range.From = parsed
		}
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		if parsed, err := time.Parse(time.RFC3339, toStr); err == nil {
			filter.Range.To = parsed
		}
	}

	if driverStr := strings.TrimSpace(c.Query("driver_id")); driverStr != "" {
		if id, err := uuid.Parse(driverStr); err == nil {
			filter.DriverID = &id
		}
	}
	for _, vehicleStr := range c.QueryArray("vehicle_id") {
		if id, err := uuid.Parse(strings.TrimSpace(vehicleStr)); err == nil {
			filter.VehicleIDs = append(filter.VehicleIDs, id)
		}
	}

	return filter
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
