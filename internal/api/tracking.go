package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/types"
	"go.uber.org/zap"
)

// TrackingHandler serves daily targets and daily activity.
type TrackingHandler struct {
	targets  service.ITargetService
	activity service.IActivityService
	logger   *zap.Logger
}

func NewTrackingHandler(targets service.ITargetService, activity service.IActivityService, logger *zap.Logger) *TrackingHandler {
	return &TrackingHandler{targets: targets, activity: activity, logger: logger}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/daily-targets/:user_id", h.GetTarget)
	router.POST("/daily-targets/:user_id", h.CreateTarget)
	router.GET("/daily-activity/:user_id/today", h.GetTodayActivity)
	router.PUT("/daily-activity/:user_id/today", h.UpdateTodayActivity)
}

func (h *TrackingHandler) GetTarget(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	target, err := h.targets.GetActiveTarget(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := types.ActiveTargetResponse{Status: types.StatusSuccess, Target: types.NewTargetResponse(target)}
	if target == nil {
		resp.Message = "No active target found"
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrackingHandler) CreateTarget(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req types.CreateTargetRequest
	if !bindJSON(c, &req) {
		return
	}

	target, err := h.targets.SetTarget(c.Request.Context(), userID, req.CaloriesTarget, req.ProteinTarget)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, types.CreateTargetResponse{Status: types.StatusSuccess, Target: types.NewTargetResponse(target)})
}

func (h *TrackingHandler) GetTodayActivity(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	activity, err := h.activity.GetToday(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, types.ActivityEnvelope{Status: types.StatusSuccess, Activity: types.NewActivityResponse(activity)})
}

func (h *TrackingHandler) UpdateTodayActivity(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req types.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.activity.UpdateToday(c.Request.Context(), userID, *req.CaloriesConsumed, *req.ProteinConsumed)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, types.ActivityEnvelope{Status: types.StatusSuccess, Activity: types.NewActivityResponse(activity)})
}
