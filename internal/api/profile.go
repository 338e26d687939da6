package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService service.IProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService service.IProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/user/profile")
	{
		profile.GET("/:user_id", h.GetProfile)
		profile.PUT("/:user_id", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	view, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req types.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, types.ProfileEnvelope{Status: types.StatusSuccess, Profile: profile})
}
