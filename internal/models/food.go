package models

// FoodItem is reference nutrition data keyed by the lowercase food name the
// classifier emits.
type FoodItem struct {
	Name         string  `gorm:"size:100;primarykey" json:"name"`
	CaloriesKcal float64 `gorm:"column:calories_kcal;not null" json:"calories_kcal"`
	ProteinG     float64 `gorm:"column:protein_g;not null" json:"protein_g"`
	FatG         float64 `gorm:"column:fat_g;not null" json:"fat_g"`
	CarbsG       float64 `gorm:"column:carbs_g;not null" json:"carbs_g"`
	Vitamins     string  `gorm:"type:text" json:"vitamins"`
	Minerals     string  `gorm:"type:text" json:"minerals"`
}
