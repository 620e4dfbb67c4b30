package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	MQTT     MQTTConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	CORSOrigin string
}

// MQTTConfig holds the broker connection and the device topics
type MQTTConfig struct {
	BrokerURL         string
	ClientID          string
	Username          string
	Password          string
	TopicCheckin      string
	TopicRegistration string
	TopicUpdate       string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "facetrack-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	// MQTT configuration
	config.MQTT = MQTTConfig{
		BrokerURL:         getEnv("MQTT_BROKER_URL", "tcp://localhost:1883"),
		ClientID:          getEnv("MQTT_CLIENT_ID", "attendance-backend"),
		Username:          getEnv("MQTT_USERNAME", ""),
		Password:          getEnv("MQTT_PASSWORD", ""),
		TopicCheckin:      getEnv("MQTT_TOPIC_CHECKIN", "facetrack/checkin"),
		TopicRegistration: getEnv("MQTT_TOPIC_REGISTRATION", "facetrack/registration"),
		TopicUpdate:       getEnv("MQTT_TOPIC_UPDATE", "facetrack/update"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.MQTT.BrokerURL == "" {
		return fmt.Errorf("MQTT_BROKER_URL is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
