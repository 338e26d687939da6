package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req *types.SignupRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileView), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockTargetService struct {
	mock.Mock
}

func (m *MockTargetService) GetActiveTarget(ctx context.Context, userID uuid.UUID) (*models.DailyTarget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyTarget), args.Error(1)
}

func (m *MockTargetService) SetTarget(ctx context.Context, userID uuid.UUID, caloriesTarget, proteinTarget int) (*models.DailyTarget, error) {
	args := m.Called(ctx, userID, caloriesTarget, proteinTarget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyTarget), args.Error(1)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) GetToday(ctx context.Context, userID uuid.UUID) (*models.DailyActivity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyActivity), args.Error(1)
}

func (m *MockActivityService) UpdateToday(ctx context.Context, userID uuid.UUID, caloriesConsumed, proteinConsumed int) (*models.DailyActivity, error) {
	args := m.Called(ctx, userID, caloriesConsumed, proteinConsumed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyActivity), args.Error(1)
}

type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) Lookup(ctx context.Context, name string) (*models.FoodItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Predict(ctx context.Context, image []byte) (*types.PredictionResponse, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PredictionResponse), args.Error(1)
}

type MockUploadArchive struct {
	mock.Mock
}

func (m *MockUploadArchive) Store(ctx context.Context, image []byte, label string) (string, error) {
	args := m.Called(ctx, image, label)
	return args.String(0), args.Error(1)
}
