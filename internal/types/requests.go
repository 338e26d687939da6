package types

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Username string `json:"username" binding:"required,trimmed,min=3,max=30"`
	Email    string `json:"email" binding:"required,email,allowed_domain"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,allowed_domain"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// CreateTargetRequest sets a new active daily target. Omitted values are 0.
type CreateTargetRequest struct {
	CaloriesTarget int `json:"calories_target" binding:"min=0"`
	ProteinTarget  int `json:"protein_target" binding:"min=0"`
}

// UpdateActivityRequest overwrites today's consumed totals. Both fields are
// pointers so an explicit 0 is distinguishable from a missing field.
type UpdateActivityRequest struct {
	CaloriesConsumed *int `json:"calories_consumed" binding:"required,min=0"`
	ProteinConsumed  *int `json:"protein_consumed" binding:"required,min=0"`
}

// UpdateProfileRequest replaces the whole profile; omitted fields are cleared.
type UpdateProfileRequest struct {
	HeightCM *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKG *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	Age      *int     `json:"age" binding:"omitempty,min=0,max=150"`
	Gender   *string  `json:"gender" binding:"omitempty,max=32"`
	Timezone *string  `json:"timezone" binding:"omitempty,timezone"`
}
