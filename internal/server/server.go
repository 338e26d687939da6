package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/calorielens/backend/config"
	"github.com/pageza/calorielens/backend/internal/api"
	"github.com/pageza/calorielens/backend/internal/classifier"
	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/middleware"
	"github.com/pageza/calorielens/backend/internal/service"
)

// Dependencies are the external resources the server is built from.
// Redis, Archive and Hasher are optional.
type Dependencies struct {
	DB         *gorm.DB
	Classifier classifier.Classifier
	Redis      *redis.Client
	Archive    service.UploadArchive
	Hasher     service.PasswordHasher
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New wires services and handlers onto a gin engine.
func New(cfg *config.Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	if deps.DB == nil || deps.Classifier == nil {
		return nil, errors.New("server requires a database and a classifier")
	}
	if err := api.RegisterValidators(cfg.AllowedEmailDomains); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(),
		middleware.RequestTimeout(cfg.RequestTimeout),
	)

	hasher := deps.Hasher
	if hasher == nil {
		hasher = service.NewBcryptHasher(service.PasswordCost)
	}

	var cache service.NutritionCache
	if deps.Redis != nil {
		cache = service.NewRedisNutritionCache(deps.Redis)
	}

	authService := service.NewAuthService(deps.DB, hasher, logger)
	profileService := service.NewProfileService(deps.DB)
	targetService := service.NewTargetService(deps.DB)
	activityService := service.NewActivityService(deps.DB, cfg.Timezone, logger)
	nutritionService := service.NewNutritionService(deps.DB, cache, cfg.NutritionCacheTTL, logger)
	predictionService := service.NewPredictionService(deps.Classifier, nutritionService, deps.Archive, logger)

	ping := func(ctx context.Context) error { return database.HealthCheck(ctx, deps.DB) }

	api.RegisterRoutes(router,
		api.NewHealthHandler(ping, cfg.DBQueryTimeout, logger),
		api.NewAuthHandler(authService, logger),
		api.NewProfileHandler(profileService, logger),
		api.NewTrackingHandler(targetService, activityService, logger),
		api.NewPredictHandler(predictionService, cfg.MaxUploadBytes, logger),
	)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
