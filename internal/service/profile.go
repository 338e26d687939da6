package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the user joined with their profile. Profile fields stay
// nil when the user never saved one.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error) {
	var view types.ProfileView
	res := s.db.WithContext(ctx).
		Table("users").
		Select(`users.id AS user_id, users.username, users.email,
			user_profiles.height_cm, user_profiles.weight_kg, user_profiles.age,
			user_profiles.gender, user_profiles.timezone, user_profiles.updated_at`).
		Joins("LEFT JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("users.id = ?", userID).
		Limit(1).
		Scan(&view)
	if res.Error != nil {
		return nil, fmt.Errorf("get profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return &view, nil
}

// UpdateProfile replaces every profile field with the request's values.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		UserID:   userID,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Age:      req.Age,
		Gender:   req.Gender,
		Timezone: req.Timezone,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").Where("id = ?", userID).Take(&models.User{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"height_cm", "weight_kg", "age", "gender", "timezone", "updated_at",
			}),
		}).Create(profile).Error
	})
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, ErrUserNotFound), database.IsForeignKeyViolation(err):
		return nil, ErrUserNotFound
	default:
		return nil, fmt.Errorf("update profile: %w", err)
	}
}
