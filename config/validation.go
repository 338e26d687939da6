package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig reports every missing or inconsistent setting at once.
func ValidateConfig(cfg *Config) error {
	errs := validateDatabase(cfg)
	errs = append(errs, validateServer(cfg)...)
	errs = append(errs, validateClassifier(cfg)...)
	return errors.Join(errs...)
}

// ValidateDatabaseConfig checks only the settings needed to reach the
// database, for commands that never serve HTTP or classify images.
func ValidateDatabaseConfig(cfg *Config) error {
	return errors.Join(validateDatabase(cfg)...)
}

func validateDatabase(cfg *Config) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	required := []struct {
		field string
		value string
	}{
		{"DB_HOST", cfg.DBHost},
		{"DB_NAME", cfg.DBName},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
	}
	for _, r := range required {
		if r.value == "" {
			add(r.field, "is required")
		}
	}

	if port, err := strconv.Atoi(cfg.DBPort); err != nil || port <= 0 || port > 65535 {
		add("DB_PORT", fmt.Sprintf("must be a valid port, got %q", cfg.DBPort))
	}
	if cfg.DBMaxOpenConns <= 0 {
		add("DB_MAX_OPEN_CONNS", "must be positive")
	}
	if cfg.DBQueryTimeout <= 0 {
		add("DB_QUERY_TIMEOUT", "must be positive")
	}
	return errs
}

func validateServer(cfg *Config) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("must be a valid port, got %q", cfg.ServerPort))
	}
	if cfg.RequestTimeout <= 0 {
		add("REQUEST_TIMEOUT", "must be positive")
	}
	if cfg.MaxUploadBytes <= 0 {
		add("MAX_UPLOAD_BYTES", "must be positive")
	}
	if cfg.NutritionCacheTTL <= 0 {
		add("NUTRITION_CACHE_TTL", "must be positive")
	}
	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		add("AWS_REGION", "is required when S3_BUCKET_NAME is set")
	}
	return errs
}

func validateClassifier(cfg *Config) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.Classifier.InputSize <= 0 {
		add("MODEL_INPUT_SIZE", "must be positive")
	}
	if cfg.Classifier.RequestTimeout <= 0 {
		add("MODEL_REQUEST_TIMEOUT", "must be positive")
	}

	switch cfg.Classifier.Backend {
	case ClassifierRemote:
		if cfg.Classifier.ModelPath == "" {
			add("MODEL_PATH", "is required for the remote classifier")
		}
		if cfg.Classifier.ServerURL == "" {
			add("MODEL_SERVER_URL", "is required for the remote classifier")
		}
	case ClassifierRekognition:
		if cfg.AWSRegion == "" {
			add("AWS_REGION", "is required for the rekognition classifier")
		}
	default:
		add("CLASSIFIER_BACKEND", fmt.Sprintf("unknown backend %q", cfg.Classifier.Backend))
	}
	return errs
}
