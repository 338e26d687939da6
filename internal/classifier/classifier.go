// Package classifier turns an uploaded food photo into a single label with
// a confidence percentage.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/pageza/calorielens/backend/config"
)

var (
	// ErrInvalidImage is returned when the upload cannot be decoded.
	ErrInvalidImage = errors.New("invalid image")
	// ErrPrediction wraps any failure of the model itself.
	ErrPrediction = errors.New("prediction failed")
)

// Result is the most probable class for an image.
type Result struct {
	Label string
	// Confidence is a percentage in [0, 100] rounded to three decimals.
	Confidence float64
}

// Classifier is loaded once at startup and shared by all requests.
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (*Result, error)
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.ClassifierConfig) (Classifier, error) {
	switch cfg.Backend {
	case config.ClassifierRemote:
		labels, err := LoadLabels(cfg.ModelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load labels: %w", err)
		}
		return NewRemote(cfg.ServerURL, labels, cfg.InputSize, cfg.RequestTimeout), nil
	case config.ClassifierRekognition:
		awsCfg, err := config.LoadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return NewRekognition(rekognition.NewFromConfig(awsCfg), cfg.InputSize), nil
	default:
		return nil, fmt.Errorf("unsupported classifier backend: %s", cfg.Backend)
	}
}

func roundConfidence(percent float64) float64 {
	return math.Round(percent*1000) / 1000
}
