package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Auth     AuthConfig
	Pricing  PricingConfig
	Loyalty  LoyaltyConfig
	Location LocationConfig
	Export   ExportConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds configuration for the optional bike-fleet database.
// The fleet registry is only consulted when Enabled is true; otherwise
// nearby bikes are synthesized around the query point.
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis configuration. Redis is the primary user and
// scheduled-ride store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// AuthConfig holds token signing and account defaults.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	InitialPoints int
}

// PricingConfig holds the per-minute rate table and point awards.
type PricingConfig struct {
	MountainPerMinute float64
	CityPerMinute     float64
	ElectricPerMinute float64
	BasePoints        int
	LongRideBonus     int // per full 30-minute block beyond the first hour
	ElectricBonus     int
	AverageSpeedKmh   float64       // used for distance estimates in ranking/export
	RentalLockTTL     time.Duration // per-user lock around rent/return
}

// LoyaltyConfig holds tier thresholds (inclusive lower bounds) and discounts.
type LoyaltyConfig struct {
	SilverMinPoints int
	GoldMinPoints   int
	SilverDiscount  float64
	GoldDiscount    float64
}

// LocationConfig holds geolocation fallback and bike synthesis parameters.
type LocationConfig struct {
	DefaultLat     float64
	DefaultLng     float64
	BikeJitterDeg  float64 // coordinate jitter for synthesized bikes, in degrees
	FleetRadiusM   float64 // fleet lookup radius, in meters
	MaxRentRadiusM float64 // how close a rider must be to rent, in meters
	CandidateTTL   time.Duration
}

// ExportConfig holds the remote analytics export endpoint.
type ExportConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load loads configuration from environment variables. A .env file in the
// working directory is merged in first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Enabled:  getBoolEnv("FLEET_DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "pedala"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "pedala-service"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:      getDurationEnv("TOKEN_TTL", 24*time.Hour),
			InitialPoints: getIntEnv("INITIAL_POINTS", 100),
		},
		Pricing: PricingConfig{
			MountainPerMinute: getFloatEnv("PRICE_MOUNTAIN_PER_MINUTE", 0.25),
			CityPerMinute:     getFloatEnv("PRICE_CITY_PER_MINUTE", 0.20),
			ElectricPerMinute: getFloatEnv("PRICE_ELECTRIC_PER_MINUTE", 0.40),
			BasePoints:        getIntEnv("POINTS_PER_RENTAL", 10),
			LongRideBonus:     getIntEnv("POINTS_LONG_RIDE_BONUS", 5),
			ElectricBonus:     getIntEnv("POINTS_ELECTRIC_BONUS", 5),
			AverageSpeedKmh:   getFloatEnv("AVERAGE_SPEED_KMH", 15),
			RentalLockTTL:     getDurationEnv("RENTAL_LOCK_TTL", 5*time.Second),
		},
		Loyalty: LoyaltyConfig{
			SilverMinPoints: getIntEnv("LOYALTY_SILVER_MIN", 200),
			GoldMinPoints:   getIntEnv("LOYALTY_GOLD_MIN", 500),
			SilverDiscount:  getFloatEnv("LOYALTY_SILVER_DISCOUNT", 0.10),
			GoldDiscount:    getFloatEnv("LOYALTY_GOLD_DISCOUNT", 0.20),
		},
		Location: LocationConfig{
			DefaultLat:     getFloatEnv("DEFAULT_LAT", -23.5505),
			DefaultLng:     getFloatEnv("DEFAULT_LNG", -46.6333),
			BikeJitterDeg:  getFloatEnv("BIKE_JITTER_DEG", 0.01),
			FleetRadiusM:   getFloatEnv("FLEET_RADIUS_M", 1000),
			MaxRentRadiusM: getFloatEnv("MAX_RENT_RADIUS_M", 100),
			CandidateTTL:   getDurationEnv("CANDIDATE_TTL", 10*time.Minute),
		},
		Export: ExportConfig{
			BaseURL: getEnv("EXPORT_BASE_URL", ""),
			Timeout: getDurationEnv("EXPORT_TIMEOUT", 5*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
