package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/calorielens/backend/internal/classifier"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
)

// PredictionService runs classify-then-lookup for an uploaded image.
type PredictionService struct {
	classifier classifier.Classifier
	nutrition  INutritionService
	archive    UploadArchive
	logger     *zap.Logger
}

// NewPredictionService wires the pipeline. archive may be nil.
func NewPredictionService(c classifier.Classifier, nutrition INutritionService, archive UploadArchive, logger *zap.Logger) *PredictionService {
	return &PredictionService{classifier: c, nutrition: nutrition, archive: archive, logger: logger}
}

// Predict classifies image and looks up the label's nutrition. The response
// keeps the classifier's label verbatim while the lookup uses its lowercase
// form. Decode and model failures wrap ErrPredictionFailed; a label without
// nutrition data returns ErrFoodNotFound.
func (s *PredictionService) Predict(ctx context.Context, image []byte) (*types.PredictionResponse, error) {
	result, err := s.classifier.Classify(ctx, image)
	if err != nil {
		if errors.Is(err, classifier.ErrInvalidImage) || errors.Is(err, classifier.ErrPrediction) {
			s.logger.Warn("prediction failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrPredictionFailed, err)
		}
		return nil, fmt.Errorf("classify: %w", err)
	}

	s.archiveUpload(ctx, image, result.Label)

	food, err := s.nutrition.Lookup(ctx, strings.ToLower(result.Label))
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			s.logger.Info("no nutrition data for label", zap.String("label", result.Label))
		}
		return nil, err
	}

	return &types.PredictionResponse{
		Food:       result.Label,
		Confidence: result.Confidence,
		Nutrition:  food,
	}, nil
}

func (s *PredictionService) archiveUpload(ctx context.Context, image []byte, label string) {
	if s.archive == nil {
		return
	}
	key, err := s.archive.Store(ctx, image, label)
	if err != nil {
		s.logger.Warn("failed to archive upload", zap.String("label", label), zap.Error(err))
		return
	}
	s.logger.Debug("archived upload", zap.String("key", key))
}
