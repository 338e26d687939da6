package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.IAuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService service.IAuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req types.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, types.SignupResponse{
		Status: types.StatusSuccess,
		User:   types.NewUserResponse(user, true),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{
		Status: types.StatusSuccess,
		User:   types.NewUserResponse(user, false),
	})
}
