package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// GPS acceptance gate
	GPSAccuracyLimitMeters float64

	// Reverse geocoding provider
	GeocoderBaseURL   string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration
	GeocoderCacheTTL  time.Duration
	GeocoderCacheSize int

	// Bootstrap admin seed
	BootstrapAdminEmail    string
	BootstrapAdminName     string
	BootstrapAdminPassword string

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "comercial-backend")
	viper.SetDefault("GPS_ACCURACY_LIMIT_M", 150.0)
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "comercial-backend")
	viper.SetDefault("GEOCODER_TIMEOUT", "10s")
	viper.SetDefault("GEOCODER_CACHE_TTL", "1h")
	viper.SetDefault("GEOCODER_CACHE_SIZE", 1024)
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "luiz.bicalho@rovemabank.com.br")
	viper.SetDefault("BOOTSTRAP_ADMIN_NAME", "Luiz Bicalho")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.GPSAccuracyLimitMeters = viper.GetFloat64("GPS_ACCURACY_LIMIT_M")
	if cfg.GPSAccuracyLimitMeters <= 0 {
		cfg.GPSAccuracyLimitMeters = 150
		log.Println("Warning: GPS_ACCURACY_LIMIT_M must be positive. Defaulting to 150.")
	}

	cfg.GeocoderBaseURL = viper.GetString("GEOCODER_BASE_URL")
	cfg.GeocoderUserAgent = viper.GetString("GEOCODER_USER_AGENT")
	cfg.GeocoderTimeout = viper.GetDuration("GEOCODER_TIMEOUT")
	if cfg.GeocoderTimeout <= 0 {
		cfg.GeocoderTimeout = 10 * time.Second
	}
	cfg.GeocoderCacheTTL = viper.GetDuration("GEOCODER_CACHE_TTL")
	if cfg.GeocoderCacheTTL <= 0 {
		cfg.GeocoderCacheTTL = time.Hour
	}
	cfg.GeocoderCacheSize = viper.GetInt("GEOCODER_CACHE_SIZE")
	if cfg.GeocoderCacheSize <= 0 {
		cfg.GeocoderCacheSize = 1024
	}

	cfg.BootstrapAdminEmail = viper.GetString("BOOTSTRAP_ADMIN_EMAIL")
	cfg.BootstrapAdminName = viper.GetString("BOOTSTRAP_ADMIN_NAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	if cfg.BootstrapAdminPassword == "" {
		log.Println("Warning: BOOTSTRAP_ADMIN_PASSWORD not set. A random password will be generated if the bootstrap admin needs seeding.")
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	return cfg, nil
}
