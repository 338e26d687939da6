package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/models"
)

const dateLayout = "2006-01-02"

// StatusSuccess is the status value of every successful mutation.
const StatusSuccess = "success"

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type SignupResponse struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

type LoginResponse struct {
	Status string       `json:"status"`
	User   UserResponse `json:"user"`
}

func NewUserResponse(u *models.User, withCreatedAt bool) UserResponse {
	resp := UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
	if withCreatedAt {
		created := u.CreatedAt
		resp.CreatedAt = &created
	}
	return resp
}

type TargetResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	CaloriesTarget int       `json:"calories_target"`
	ProteinTarget  int       `json:"protein_target"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewTargetResponse(t *models.DailyTarget) *TargetResponse {
	if t == nil {
		return nil
	}
	return &TargetResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		CaloriesTarget: t.CaloriesTarget,
		ProteinTarget:  t.ProteinTarget,
		Active:         t.Active,
		CreatedAt:      t.CreatedAt,
	}
}

// ActiveTargetResponse carries a null target when none is active.
type ActiveTargetResponse struct {
	Status  string          `json:"status"`
	Target  *TargetResponse `json:"target"`
	Message string          `json:"message,omitempty"`
}

type CreateTargetResponse struct {
	Status string          `json:"status"`
	Target *TargetResponse `json:"target"`
}

// ActivityResponse renders activity_date as a plain calendar date.
type ActivityResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	ActivityDate     string    `json:"activity_date"`
	CaloriesConsumed int       `json:"calories_consumed"`
	ProteinConsumed  int       `json:"protein_consumed"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewActivityResponse(a *models.DailyActivity) *ActivityResponse {
	return &ActivityResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		ActivityDate:     a.ActivityDate.Format(dateLayout),
		CaloriesConsumed: a.CaloriesConsumed,
		ProteinConsumed:  a.ProteinConsumed,
		Completed:        a.Completed,
		CreatedAt:        a.CreatedAt,
	}
}

type ActivityEnvelope struct {
	Status   string            `json:"status"`
	Activity *ActivityResponse `json:"activity"`
}

// ProfileView is a user joined with their profile. Profile fields are null
// until the first update.
type ProfileView struct {
	UserID    uuid.UUID  `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	HeightCM  *float64   `json:"height_cm"`
	WeightKG  *float64   `json:"weight_kg"`
	Age       *int       `json:"age"`
	Gender    *string    `json:"gender"`
	Timezone  *string    `json:"timezone"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ProfileEnvelope struct {
	Status  string              `json:"status"`
	Profile *models.UserProfile `json:"profile"`
}

// PredictionResponse is the body of a successful /predict call.
type PredictionResponse struct {
	Food       string           `json:"food"`
	Confidence float64          `json:"confidence"`
	Nutrition  *models.FoodItem `json:"nutrition"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
