package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/services"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/utils"
)

const (
	defaultDataWindowHours = 24
	defaultDataLimit       = 100
)

type SensorHandler struct {
	registry  *services.SensorRegistryService
	ingestion *services.IngestionService
	export    *services.ExportService
	timeout   time.Duration
}

func NewSensorHandler(
	registry *services.SensorRegistryService,
	ingestion *services.IngestionService,
	export *services.ExportService,
	timeout time.Duration,
) *SensorHandler {
	return &SensorHandler{
		registry:  registry,
		ingestion: ingestion,
		export:    export,
		timeout:   timeout,
	}
}

// RegisterRoutes wires the sensor endpoints. The ingest endpoint is open to
// devices; everything else sits behind the gateway auth header.
func (h *SensorHandler) RegisterRoutes(router *gin.Engine) {
	sensors := router.Group("/sensors")
	{
		sensors.POST("/data", h.IngestData)

		authed := sensors.Group("", RequireAuth())
		{
			authed.POST("/register", h.RegisterSensor)
			authed.GET("/:sensorId/data", h.GetSensorData)
			authed.GET("/:sensorId/export", h.ExportSensorData)
		}
	}
}

// IngestData accepts one measurement from a device.
func (h *SensorHandler) IngestData(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			utils.CreateErrorResponse("INVALID_BODY", "Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if err := h.ingestion.Ingest(ctx, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"message": "Data received successfully",
	}))
}

// RegisterSensor creates a sensor under one of the caller's greenhouses.
func (h *SensorHandler) RegisterSensor(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.RegisterSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			utils.CreateErrorResponse("INVALID_BODY", "Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	sensor, err := h.registry.Register(ctx, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(gin.H{
		"sensor": sensor,
	}))
}

// GetSensorData returns recent readings for an owned sensor.
func (h *SensorHandler) GetSensorData(c *gin.Context) {
	userID := c.GetString("userID")

	sensorID, err := uuid.Parse(c.Param("sensorId"))
	if err != nil {
		c.JSON(http.StatusNotFound,
			utils.CreateErrorResponse("SENSOR_NOT_FOUND", "Sensor not found"))
		return
	}

	hours, err := utils.GetQueryParamAsInt(c, "hours", defaultDataWindowHours)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			utils.CreateErrorResponse("INVALID_PARAM", err.Error()))
		return
	}
	limit, err := utils.GetQueryParamAsInt(c, "limit", defaultDataLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			utils.CreateErrorResponse("INVALID_PARAM", err.Error()))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	readings, err := h.registry.GetSensorData(ctx, userID, sensorID, hours, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"readings": readings,
	}))
}

// ExportSensorData streams an xlsx workbook of recent readings.
func (h *SensorHandler) ExportSensorData(c *gin.Context) {
	userID := c.GetString("userID")

	sensorID, err := uuid.Parse(c.Param("sensorId"))
	if err != nil {
		c.JSON(http.StatusNotFound,
			utils.CreateErrorResponse("SENSOR_NOT_FOUND", "Sensor not found"))
		return
	}

	hours, err := utils.GetQueryParamAsInt(c, "hours", defaultDataWindowHours)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			utils.CreateErrorResponse("INVALID_PARAM", err.Error()))
		return
	}
	limit, err := utils.GetQueryParamAsInt(c, "limit", defaultDataLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			utils.CreateErrorResponse("INVALID_PARAM", err.Error()))
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	workbook, err := h.export.BuildReadingsWorkbook(ctx, userID, sensorID, hours, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("sensor-%s-readings.xlsx", sensorID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already sent; nothing left to do but log through the
		// gin recovery chain.
		c.Error(err)
	}
}
