package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordCost is the bcrypt work factor for new hashes.
const PasswordCost = 12

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher is the production PasswordHasher.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	return string(hash), err
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type AuthService struct {
	db     *gorm.DB
	hasher PasswordHasher
	logger *zap.Logger
	// dummyHash is compared against when the email is unknown so that both
	// failure paths cost one hash verification.
	dummyHash string
}

func NewAuthService(db *gorm.DB, hasher PasswordHasher, logger *zap.Logger) *AuthService {
	dummy, err := hasher.Hash("calorielens-timing-equalizer")
	if err != nil {
		logger.Warn("failed to prepare dummy password hash", zap.Error(err))
	}
	return &AuthService{db: db, hasher: hasher, logger: logger, dummyHash: dummy}
}

// NormalizeEmail lowercases and trims an address before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a user. The duplicate pre-check only avoids hashing for
// obvious conflicts; the unique constraints decide concurrent races.
func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*models.User, error) {
	email := NormalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrConflict
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, err
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := db.Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login returns ErrInvalidCredentials for an unknown email, a wrong password
// and an unreadable stored hash alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = s.hasher.Compare(s.dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("stored password hash is unreadable",
				zap.String("user_id", user.ID.String()), zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
