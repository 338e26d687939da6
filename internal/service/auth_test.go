package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/testhelpers"
	"github.com/pageza/calorielens/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*gorm.DB, *service.AuthService) {
	db := testhelpers.SetupSQLiteDB(t)
	return db, service.NewAuthService(db, service.NewBcryptHasher(bcrypt.MinCost), zaptest.NewLogger(t))
}

func TestSignup(t *testing.T) {
	db, authSvc := setupAuthTest(t)
	ctx := context.Background()

	user, err := authSvc.Signup(ctx, &types.SignupRequest{
		Username: "alice",
		Email:    "  Alice@Gmail.com ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@gmail.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestSignupDuplicate(t *testing.T) {
	db, authSvc := setupAuthTest(t)
	ctx := context.Background()

	_, err := authSvc.Signup(ctx, &types.SignupRequest{Username: "alice", Email: "alice@gmail.com", Password: "password123"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  types.SignupRequest
	}{
		{"same email", types.SignupRequest{Username: "alice2", Email: "ALICE@gmail.com", Password: "password123"}},
		{"same username", types.SignupRequest{Username: "alice", Email: "other@gmail.com", Password: "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authSvc.Signup(ctx, &tt.req)
			assert.ErrorIs(t, err, service.ErrConflict)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// racingHasher inserts a conflicting user after the duplicate pre-check has
// passed, the way a concurrent signup would.
type racingHasher struct {
	*service.BcryptHasher
	db *gorm.DB
}

func (h *racingHasher) Hash(password string) (string, error) {
	if password == "password123" {
		h.db.Create(&models.User{Username: "sneaky", Email: "bob@gmail.com", PasswordHash: "x"})
	}
	return h.BcryptHasher.Hash(password)
}

func TestSignupUniqueConstraintWins(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	hasher := &racingHasher{BcryptHasher: service.NewBcryptHasher(bcrypt.MinCost), db: db}
	authSvc := service.NewAuthService(db, hasher, zaptest.NewLogger(t))

	_, err := authSvc.Signup(context.Background(), &types.SignupRequest{Username: "bob", Email: "bob@gmail.com", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "bob@gmail.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignupPasswordTooLong(t *testing.T) {
	_, authSvc := setupAuthTest(t)

	_, err := authSvc.Signup(context.Background(), &types.SignupRequest{
		Username: "carol",
		Email:    "carol@gmail.com",
		Password: strings.Repeat("é", 40),
	})
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)
}

func TestLogin(t *testing.T) {
	db, authSvc := setupAuthTest(t)
	ctx := context.Background()

	created, err := authSvc.Signup(ctx, &types.SignupRequest{Username: "alice", Email: "alice@gmail.com", Password: "password123"})
	require.NoError(t, err)

	user, err := authSvc.Login(ctx, "Alice@Gmail.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = authSvc.Login(ctx, "alice@gmail.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = authSvc.Login(ctx, "nobody@gmail.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", created.ID).Update("password_hash", "not-a-bcrypt-hash").Error)
	_, err = authSvc.Login(ctx, "alice@gmail.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
