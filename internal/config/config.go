package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Parser    ParserConfig
	Capture   CaptureConfig
	Dashboard DashboardConfig
	Review    ReviewConfig
	JWT       JWTConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ParserConfig points at the external parse webhook and fixes the metadata
// the webhook contract expects on every submission.
type ParserConfig struct {
	WebhookURL string
	Timeout    time.Duration
	Source     string
	Device     string
	Timezone   string
}

// CaptureConfig bounds a single recording session
type CaptureConfig struct {
	MaxDuration time.Duration
}

// DashboardConfig controls the background refresh loop and the query shape
// behind each refresh.
type DashboardConfig struct {
	RefreshInterval time.Duration
	QueryLimit      int
}

// ReviewConfig holds the confidence cut-off below which a parsed draft must
// be confirmed by the user before it is saved.
type ReviewConfig struct {
	ConfidenceThreshold float64
}

type JWTConfig struct {
	PrivateKey *rsa.PrivateKey
	PublicKey  *rsa.PublicKey
	Issuer     string
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "expenses_user"),
			Password:        getEnv("DB_PASSWORD", "expenses_password"),
			Name:            getEnv("DB_NAME", "expenses_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Parser: ParserConfig{
			WebhookURL: getEnv("PARSER_WEBHOOK_URL", "http://localhost:5678/webhook/expense"),
			Timeout:    getDurationEnv("PARSER_TIMEOUT", 30*time.Second),
			Source:     getEnv("PARSER_SOURCE", "bolt"),
			Device:     getEnv("PARSER_DEVICE", "web"),
			Timezone:   getEnv("PARSER_TIMEZONE", "Asia/Kolkata"),
		},
		Capture: CaptureConfig{
			MaxDuration: getDurationEnv("CAPTURE_MAX_DURATION", 10*time.Second),
		},
		Dashboard: DashboardConfig{
			RefreshInterval: getDurationEnv("DASHBOARD_REFRESH_INTERVAL", 15*time.Second),
			QueryLimit:      getIntEnv("DASHBOARD_QUERY_LIMIT", 100),
		},
		Review: ReviewConfig{
			ConfidenceThreshold: getFloatEnv("REVIEW_CONFIDENCE_THRESHOLD", 0.7),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
		JWT: JWTConfig{
			Issuer: getEnv("JWT_ISSUER", "expenses-auth"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadJWTKeysErr error
	config.JWT.PrivateKey, config.JWT.PublicKey, loadJWTKeysErr = config.loadJWTKeys()
	if loadJWTKeysErr != nil {
		log.Fatal("Failed to load RSA keys:", loadJWTKeysErr)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
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

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTKeys loads RSA keys for access token verification
// Priority order:
// 1. If JWT_PUBLIC_KEY is set (base64-encoded PEM), use it; tokens are minted
//    by the external auth collaborator, so no private key is required
// 2. If production and the env var is missing, fail with error
// 3. If development/testing, generate a throwaway keypair so local tooling
//    can mint its own tokens
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if publicKeyB64 != "" {
		log.Println("Loading RSA public key from environment variable")
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
		}

		publicKey, err := loadRSAPublicKey(publicKeyBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
		}

		return nil, publicKey, nil
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY environment variable must be set in production environments")
	}

	log.Println("Development environment: generating new RSA keypair for JWT (consider setting JWT_PUBLIC_KEY to verify against the real auth service)")
	return GenerateRSAKeyPair()
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
