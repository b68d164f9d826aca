package config

import (
	"os"
	"strconv"
)

type GreenhouseServiceConfig struct {
	Port        string
	PostgresCfg PostgresConfig
	RedisCfg    RedisConfig
	RabbitMQCfg RabbitMQConfig
	MQTTCfg     MQTTConfig

	// Locale selects the day-name and relative-time string table used by
	// the dashboard. Only "fr" ships today.
	Locale string

	// RequestTimeoutSeconds bounds every request-scoped store operation.
	RequestTimeoutSeconds int

	// DashboardCacheTTLSeconds bounds staleness of the Redis dashboard
	// cache. Zero disables caching.
	DashboardCacheTTLSeconds int
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Username string
	Password string
	Host     string
	Port     string
}

type MQTTConfig struct {
	Enabled  bool
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
}

func New() *GreenhouseServiceConfig {
	return &GreenhouseServiceConfig{
		Port: getEnvOrDefault("PORT", "8084"),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "greenhouse"),
			Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
		},
		RabbitMQCfg: RabbitMQConfig{
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		MQTTCfg: MQTTConfig{
			Enabled:  getEnvOrDefault("MQTT_ENABLED", "false") == "true",
			Broker:   getEnvOrDefault("MQTT_BROKER", "tcp://localhost:1883"),
			ClientID: getEnvOrDefault("MQTT_CLIENT_ID", "greenhouse-service"),
			Username: getEnvOrDefault("MQTT_USERNAME", ""),
			Password: getEnvOrDefault("MQTT_PASSWORD", ""),
			Topic:    getEnvOrDefault("MQTT_TOPIC", "sensors/data"),
		},
		Locale:                   getEnvOrDefault("LOCALE", "fr"),
		RequestTimeoutSeconds:    getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 5),
		DashboardCacheTTLSeconds: getEnvIntOrDefault("DASHBOARD_CACHE_TTL_SECONDS", 30),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
