package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds optional body measurements. Absent values are NULL.
type UserProfile struct {
	UserID    uuid.UUID `gorm:"type:varchar(36);primarykey" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	HeightCM  *float64  `gorm:"column:height_cm" json:"height_cm"`
	WeightKG  *float64  `gorm:"column:weight_kg" json:"weight_kg"`
	Age       *int      `json:"age"`
	Gender    *string   `gorm:"size:32" json:"gender"`
	Timezone  *string   `gorm:"size:64" json:"timezone"`
	UpdatedAt time.Time `json:"updated_at"`
}
