package database

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pageza/calorielens/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadFoods reads a JSON array of food items. Names are lowercased to match
// the form nutrition lookups use.
func LoadFoods(r io.Reader) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode food items: %w", err)
	}
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		name := strings.ToLower(strings.TrimSpace(items[i].Name))
		if name == "" {
			return nil, fmt.Errorf("food item %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("food item %q listed twice", name)
		}
		seen[name] = struct{}{}
		items[i].Name = name
	}
	return items, nil
}

// SeedFoods inserts items, overwriting rows that already exist by name.
func SeedFoods(ctx context.Context, db *gorm.DB, items []models.FoodItem) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		CreateInBatches(items, 100)
	if result.Error != nil {
		return 0, fmt.Errorf("seed food items: %w", result.Error)
	}
	return result.RowsAffected, nil
}
