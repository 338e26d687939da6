package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/types"
)

// IAuthService defines the interface for account operations
type IAuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// ITargetService defines the interface for daily target operations
type ITargetService interface {
	GetActiveTarget(ctx context.Context, userID uuid.UUID) (*models.DailyTarget, error)
	SetTarget(ctx context.Context, userID uuid.UUID, caloriesTarget, proteinTarget int) (*models.DailyTarget, error)
}

// IActivityService defines the interface for daily activity operations
type IActivityService interface {
	GetToday(ctx context.Context, userID uuid.UUID) (*models.DailyActivity, error)
	UpdateToday(ctx context.Context, userID uuid.UUID, caloriesConsumed, proteinConsumed int) (*models.DailyActivity, error)
}

// INutritionService looks up reference nutrition data by food name
type INutritionService interface {
	Lookup(ctx context.Context, name string) (*models.FoodItem, error)
}

// IPredictionService classifies an image and attaches its nutrition facts
type IPredictionService interface {
	Predict(ctx context.Context, image []byte) (*types.PredictionResponse, error)
}

// UploadArchive stores a copy of a classified upload.
type UploadArchive interface {
	Store(ctx context.Context, image []byte, label string) (string, error)
}

var (
	_ IAuthService       = (*AuthService)(nil)
	_ IProfileService    = (*ProfileService)(nil)
	_ ITargetService     = (*TargetService)(nil)
	_ IActivityService   = (*ActivityService)(nil)
	_ INutritionService  = (*NutritionService)(nil)
	_ IPredictionService = (*PredictionService)(nil)
	_ UploadArchive      = (*S3UploadArchive)(nil)
)
