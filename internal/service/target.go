package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TargetService struct {
	db *gorm.DB
}

func NewTargetService(db *gorm.DB) *TargetService {
	return &TargetService{db: db}
}

// GetActiveTarget returns nil without error when the user has no active target.
func (s *TargetService) GetActiveTarget(ctx context.Context, userID uuid.UUID) (*models.DailyTarget, error) {
	var target models.DailyTarget
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Take(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active target: %w", err)
	}
	return &target, nil
}

// SetTarget deactivates the user's targets and inserts a new active one.
// The user row is locked for the duration so concurrent calls serialize and
// exactly one target stays active.
func (s *TargetService) SetTarget(ctx context.Context, userID uuid.UUID, caloriesTarget, proteinTarget int) (*models.DailyTarget, error) {
	target := &models.DailyTarget{
		UserID:         userID,
		CaloriesTarget: caloriesTarget,
		ProteinTarget:  proteinTarget,
		Active:         true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", userID).
			Take(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}

		if err := tx.Model(&models.DailyTarget{}).
			Where("user_id = ? AND active = ?", userID, true).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("deactivate targets: %w", err)
		}

		if err := tx.Create(target).Error; err != nil {
			return fmt.Errorf("insert target: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}
