package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/cache"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/services"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/utils"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
	// cache is nil when Redis is unavailable; every request then renders
	// from the store.
	cache   *cache.DashboardCache
	timeout time.Duration
}

func NewDashboardHandler(dashboard *services.DashboardService, dashboardCache *cache.DashboardCache, timeout time.Duration) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		cache:     dashboardCache,
		timeout:   timeout,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	dashboard := router.Group("/dashboard", RequireAuth())
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/greenhouse/:greenhouseId", h.GetGreenhouseDetail)
	}
}

// GetDashboard returns the farm dashboard for the authenticated farmer.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString("userID")

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if h.cache != nil {
		if view, _ := h.cache.Get(ctx, userID); view != nil {
			c.JSON(http.StatusOK, utils.CreateSuccessResponse(view))
			return
		}
	}

	view, err := h.dashboard.GetDashboard(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, userID, view)
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(view))
}

// GetGreenhouseDetail returns one greenhouse with sensors and health history.
func (h *DashboardHandler) GetGreenhouseDetail(c *gin.Context) {
	userID := c.GetString("userID")

	greenhouseID, err := uuid.Parse(c.Param("greenhouseId"))
	if err != nil {
		c.JSON(http.StatusNotFound,
			utils.CreateErrorResponse("NOT_FOUND", "Greenhouse not found"))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	view, err := h.dashboard.GetGreenhouseDetail(ctx, userID, greenhouseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(view))
}
