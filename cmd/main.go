package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/cache"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/config"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/database/postgres"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/event"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/handlers"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/mqtt"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/repository"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/services"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.New()
	requestTimeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	// db connection; every repository needs it, so a down database fails
	// the boot instead of leaving handlers on a nil connection
	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// redis is optional; without it the dashboard renders uncached
	var dashboardCache *cache.DashboardCache
	redisClient, err := cache.Connect(cfg.RedisCfg, requestTimeout)
	if err != nil {
		slog.Warn("Redis unavailable, dashboard caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		if cfg.DashboardCacheTTLSeconds > 0 {
			ttl := time.Duration(cfg.DashboardCacheTTLSeconds) * time.Second
			dashboardCache = cache.NewDashboardCache(redisClient, ttl)
		}
	}

	// rabbitmq is optional; without it alerts still land in the feed
	var alertPublisher services.IAlertPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		slog.Warn("RabbitMQ unavailable, alert notifications disabled", "error", err)
	} else {
		defer rabbitConn.Close()
		alertPublisher = event.NewAlertPublisher(rabbitConn)
	}

	locale := services.GetLocale(cfg.Locale)

	// repositories
	farmRepo := repository.NewFarmRepository(db)
	greenhouseRepo := repository.NewGreenhouseRepository(db)
	sensorRepo := repository.NewSensorRepository(db)
	readingRepo := repository.NewSensorReadingRepository(db)
	plantHealthRepo := repository.NewPlantHealthRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// services
	activityService := services.NewActivityService(activityRepo, locale)
	alertEvaluator := services.NewAlertEvaluator(greenhouseRepo, activityService, alertPublisher)
	registryService := services.NewSensorRegistryService(farmRepo, greenhouseRepo, sensorRepo, readingRepo, activityService)
	ingestionService := services.NewIngestionService(registryService, sensorRepo, readingRepo, alertEvaluator)
	dashboardService := services.NewDashboardService(farmRepo, greenhouseRepo, sensorRepo, readingRepo, plantHealthRepo, activityService, locale)
	exportService := services.NewExportService(registryService)

	// mqtt ingest bridge
	if cfg.MQTTCfg.Enabled {
		subscriber := mqtt.NewSubscriber(cfg.MQTTCfg, ingestionService, requestTimeout)
		if err := subscriber.Start(); err != nil {
			slog.Warn("MQTT subscriber failed to start, HTTP ingest only", "error", err)
		} else {
			defer subscriber.Stop()
		}
	}

	r := gin.Default()
	r.GET("/checkhealth", func(c *gin.Context) {
		c.String(200, "Greenhouse service is healthy")
	})

	// handlers
	sensorHandler := handlers.NewSensorHandler(registryService, ingestionService, exportService, requestTimeout)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, dashboardCache, requestTimeout)

	// Register routes
	sensorHandler.RegisterRoutes(r)
	dashboardHandler.RegisterRoutes(r)

	slog.Info("Starting greenhouse-service", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
