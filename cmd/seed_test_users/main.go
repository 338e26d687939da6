package main

import (
	"context"
	"errors"
	"log"

	"github.com/pageza/calorielens/backend/config"
	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/logger"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/types"
)

const testPassword = "testpassword123"

func main() {
	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	db, err := database.New(cfg, zl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db) //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	auth := service.NewAuthService(db, service.NewBcryptHasher(service.PasswordCost), zl)
	targets := service.NewTargetService(db)
	profiles := service.NewProfileService(db)

	height, weight, age := 175.0, 70.0, 30
	timezone := "America/New_York"

	testUsers := []struct {
		username string
		email    string
		calories int
		protein  int
		profile  bool
	}{
		{username: "johndoe", email: "john.doe@gmail.com", calories: 2200, protein: 140, profile: true},
		{username: "janesmith", email: "jane.smith@gmail.com", calories: 1800, protein: 110, profile: true},
		{username: "bobwilson", email: "bob.wilson@yahoo.com", calories: 2500, protein: 160},
		{username: "newcomer", email: "newcomer@yahoo.com"},
	}

	log.Println("Creating test users...")

	for _, u := range testUsers {
		user, err := auth.Signup(ctx, &types.SignupRequest{Username: u.username, Email: u.email, Password: testPassword})
		if errors.Is(err, service.ErrConflict) {
			log.Printf("User %s already exists, skipping...", u.email)
			continue
		}
		if err != nil {
			log.Printf("Failed to create user %s: %v", u.email, err)
			continue
		}

		if u.calories > 0 {
			if _, err := targets.SetTarget(ctx, user.ID, u.calories, u.protein); err != nil {
				log.Printf("Failed to set target for %s: %v", u.email, err)
			}
		}

		if u.profile {
			req := &types.UpdateProfileRequest{HeightCM: &height, WeightKG: &weight, Age: &age, Timezone: &timezone}
			if _, err := profiles.UpdateProfile(ctx, user.ID, req); err != nil {
				log.Printf("Failed to create profile for %s: %v", u.email, err)
			}
		}

		log.Printf("✅ Created user: %s (%s)", u.username, u.email)
	}

	var userCount, targetCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.DailyTarget{}).Where("active = ?", true).Count(&targetCount)

	log.Println("\n📋 Test Users Summary:")
	log.Printf("👤 Total users: %d", userCount)
	log.Printf("🎯 Users with an active target: %d", targetCount)
	log.Println("\n🔑 Test Credentials:")
	log.Printf("Password: %s", testPassword)
}
