package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultServerPort        = "8000"
	DefaultDBPort            = "5432"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxOpenConns    = 25
	DefaultDBQueryTimeout    = 5 * time.Second
	DefaultRequestTimeout    = 30 * time.Second
	DefaultMaxUploadBytes    = 10 << 20
	DefaultModelInputSize    = 224
	DefaultNutritionCacheTTL = time.Hour

	ClassifierRemote      = "remote"
	ClassifierRekognition = "rekognition"
)

// DefaultAllowedEmailDomains is used when ALLOWED_EMAIL_DOMAINS is unset.
var DefaultAllowedEmailDomains = []string{"gmail.com", "yahoo.com"}

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort     string
	RequestTimeout time.Duration
	MaxUploadBytes int64

	// Database configuration
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBQueryTimeout time.Duration

	// Location used for "today" when a user has no timezone on their profile.
	Timezone *time.Location

	// AllowedEmailDomains is nil when any domain may sign up.
	AllowedEmailDomains []string

	Classifier ClassifierConfig

	// Optional nutrition cache
	RedisURL          string
	NutritionCacheTTL time.Duration

	// AWS, used by the rekognition backend and the upload archive
	AWSRegion    string
	S3BucketName string
}

// ClassifierConfig selects and configures the image classification backend.
type ClassifierConfig struct {
	Backend        string
	ModelPath      string
	ServerURL      string
	InputSize      int
	RequestTimeout time.Duration
	AWSRegion      string
}

// LoadConfig creates a new Config instance with values from the environment,
// an optional .env file and Docker secrets.
func LoadConfig() (*Config, error) {
	return load(ValidateConfig)
}

// LoadDatabaseConfig loads the same sources as LoadConfig but validates only
// the database settings. Offline tools such as the seeders use it.
func LoadDatabaseConfig() (*Config, error) {
	return load(ValidateDatabaseConfig)
}

func load(validate func(*Config) error) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	env := GetEnvironment()
	cfg, err := loadFromEnv(env)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadFromEnv(env Environment) (*Config, error) {
	p := &parser{}
	cfg := &Config{
		Env:            env,
		ServerPort:     getEnv("SERVER_PORT", DefaultServerPort),
		RequestTimeout: p.duration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		MaxUploadBytes: int64(p.integer("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)),

		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", DefaultDBPort),
		DBUser:         os.Getenv("DB_USER"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      getEnv("DB_SSL_MODE", DefaultDBSSLMode),
		DBMaxOpenConns: p.integer("DB_MAX_OPEN_CONNS", DefaultDBMaxOpenConns),
		DBQueryTimeout: p.duration("DB_QUERY_TIMEOUT", DefaultDBQueryTimeout),

		AllowedEmailDomains: parseDomains(os.Getenv("ALLOWED_EMAIL_DOMAINS")),

		RedisURL:          os.Getenv("REDIS_URL"),
		NutritionCacheTTL: p.duration("NUTRITION_CACHE_TTL", DefaultNutritionCacheTTL),

		AWSRegion:    os.Getenv("AWS_REGION"),
		S3BucketName: os.Getenv("S3_BUCKET_NAME"),
	}
	cfg.DBPassword = dbPassword(env)

	cfg.Classifier = ClassifierConfig{
		Backend:        strings.ToLower(getEnv("CLASSIFIER_BACKEND", ClassifierRemote)),
		ModelPath:      os.Getenv("MODEL_PATH"),
		ServerURL:      os.Getenv("MODEL_SERVER_URL"),
		InputSize:      p.integer("MODEL_INPUT_SIZE", DefaultModelInputSize),
		RequestTimeout: p.duration("MODEL_REQUEST_TIMEOUT", 20*time.Second),
		AWSRegion:      cfg.AWSRegion,
	}

	cfg.Timezone = time.Local
	if name := os.Getenv("APP_TIMEZONE"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			p.fail("APP_TIMEZONE", fmt.Sprintf("unknown timezone %q", name))
		} else {
			cfg.Timezone = loc
		}
	}

	if len(p.errs) > 0 {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, errors.Join(p.errs...))
	}
	return cfg, nil
}

// dbPassword prefers the db_password Docker secret outside CI and falls back
// to the environment. CI runners only see TEST_DB_PASSWORD or DB_PASSWORD.
func dbPassword(env Environment) string {
	if env == CI {
		if v := os.Getenv("TEST_DB_PASSWORD"); v != "" {
			return v
		}
		return os.Getenv("DB_PASSWORD")
	}
	if v := readSecret("db_password"); v != "" {
		return v
	}
	return os.Getenv("DB_PASSWORD")
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// parseDomains splits a comma separated allow-list. "*" disables the check.
func parseDomains(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultAllowedEmailDomains
	}
	if raw == "*" {
		return nil
	}
	var domains []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// parser collects every malformed value instead of stopping at the first.
type parser struct {
	errs []error
}

func (p *parser) fail(field, msg string) {
	p.errs = append(p.errs, ValidationError{Field: field, Message: msg})
}

func (p *parser) integer(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, fmt.Sprintf("must be an integer, got %q", raw))
		return fallback
	}
	return n
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, fmt.Sprintf("must be a duration such as 5s, got %q", raw))
		return fallback
	}
	return d
}
