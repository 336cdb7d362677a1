package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Webhook    WebhookConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AttendanceConfig holds the attendance policy knobs.
type AttendanceConfig struct {
	// DefaultRadiusMeters is the geofence radius for sites without one of
	// their own.
	DefaultRadiusMeters float64
	// MinWorkHours is the shift length under which a checkout needs remarks.
	MinWorkHours float64
}

// WebhookConfig guards the external integration surface.
type WebhookConfig struct {
	// APIKeyHash is the bcrypt hash of the integration API key.
	APIKeyHash string
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
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
		Name:     getEnv("DB_NAME", "hvac_backend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance policy configuration
	defaultRadius, err := strconv.ParseFloat(getEnv("ATTENDANCE_DEFAULT_RADIUS_METERS", "500"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DEFAULT_RADIUS_METERS: %w", err)
	}
	minWorkHours, err := strconv.ParseFloat(getEnv("ATTENDANCE_MIN_WORK_HOURS", "7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_MIN_WORK_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DefaultRadiusMeters: defaultRadius,
		MinWorkHours:        minWorkHours,
	}

	config.Webhook = WebhookConfig{
		APIKeyHash: getEnv("WEBHOOK_API_KEY_HASH", ""),
	}

	// Validate required fields
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("ATTENDANCE_DEFAULT_RADIUS_METERS must be positive")
	}
	if c.Attendance.MinWorkHours <= 0 {
		return fmt.Errorf("ATTENDANCE_MIN_WORK_HOURS must be positive")
	}
	if c.Webhook.APIKeyHash == "" {
		return fmt.Errorf("WEBHOOK_API_KEY_HASH is required")
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

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
