package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var activityConflictColumns = []clause.Column{{Name: "user_id"}, {Name: "activity_date"}}

type ActivityService struct {
	db       *gorm.DB
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewActivityService uses loc for users without a profile timezone.
func NewActivityService(db *gorm.DB, loc *time.Location, logger *zap.Logger) *ActivityService {
	if loc == nil {
		loc = time.Local
	}
	return &ActivityService{db: db, location: loc, now: time.Now, logger: logger}
}

// GetToday returns today's row, creating a zeroed one on first access.
// Concurrent first calls all see the same single row.
func (s *ActivityService) GetToday(ctx context.Context, userID uuid.UUID) (*models.DailyActivity, error) {
	day := s.today(ctx, userID)

	row := &models.DailyActivity{UserID: userID, ActivityDate: day}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: activityConflictColumns, DoNothing: true}).
		Create(row).Error
	if err != nil {
		return nil, s.writeError(ctx, userID, "create today's activity", err)
	}
	return s.find(s.db.WithContext(ctx), userID, day)
}

// UpdateToday overwrites today's consumed totals, creating the row if needed.
func (s *ActivityService) UpdateToday(ctx context.Context, userID uuid.UUID, caloriesConsumed, proteinConsumed int) (*models.DailyActivity, error) {
	day := s.today(ctx, userID)

	var activity *models.DailyActivity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := &models.DailyActivity{
			UserID:           userID,
			ActivityDate:     day,
			CaloriesConsumed: caloriesConsumed,
			ProteinConsumed:  proteinConsumed,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   activityConflictColumns,
			DoUpdates: clause.AssignmentColumns([]string{"calories_consumed", "protein_consumed"}),
		}).Create(row).Error; err != nil {
			return err
		}

		var err error
		activity, err = s.find(tx, userID, day)
		return err
	})
	if err != nil {
		return nil, s.writeError(ctx, userID, "update today's activity", err)
	}
	return activity, nil
}

func (s *ActivityService) find(db *gorm.DB, userID uuid.UUID, day time.Time) (*models.DailyActivity, error) {
	var activity models.DailyActivity
	if err := db.Where("user_id = ? AND activity_date = ?", userID, day).Take(&activity).Error; err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}
	return &activity, nil
}

// writeError maps a failed write for a missing user to ErrUserNotFound.
func (s *ActivityService) writeError(ctx context.Context, userID uuid.UUID, op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return ErrUserNotFound
	}
	var count int64
	if cerr := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; cerr == nil && count == 0 {
		return ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// today is the current calendar date in the user's timezone, falling back
// to the service location. The result is midnight UTC so it compares
// equal to the stored DATE value on every driver.
func (s *ActivityService) today(ctx context.Context, userID uuid.UUID) time.Time {
	loc := s.location

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Select("timezone").Where("user_id = ?", userID).Take(&profile).Error
	switch {
	case err == nil && profile.Timezone != nil && *profile.Timezone != "":
		if userLoc, lerr := time.LoadLocation(*profile.Timezone); lerr == nil {
			loc = userLoc
		} else {
			s.logger.Warn("ignoring invalid profile timezone",
				zap.String("user_id", userID.String()), zap.String("timezone", *profile.Timezone))
		}
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Warn("failed to read profile timezone", zap.String("user_id", userID.String()), zap.Error(err))
	}

	y, m, d := s.now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
