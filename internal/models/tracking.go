package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyTarget is a calorie and protein goal. At most one row per user is
// active; older rows are kept as history.
type DailyTarget struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CaloriesTarget int       `gorm:"not null" json:"calories_target"`
	ProteinTarget  int       `gorm:"not null" json:"protein_target"`
	Active         bool      `gorm:"not null" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (t *DailyTarget) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// DailyActivity is what a user consumed on one calendar day.
// (UserID, ActivityDate) is unique.
type DailyActivity struct {
	ID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_daily_activity_user_date" json:"user_id"`
	User             *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ActivityDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_activity_user_date" json:"activity_date"`
	CaloriesConsumed int       `gorm:"not null" json:"calories_consumed"`
	ProteinConsumed  int       `gorm:"not null" json:"protein_consumed"`
	Completed        bool      `gorm:"not null" json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

func (DailyActivity) TableName() string {
	return "daily_activity"
}

func (a *DailyActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
