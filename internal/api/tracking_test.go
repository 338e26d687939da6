package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/calorielens/backend/internal/mocks"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

func setupTrackingTest(t *testing.T) (*mocks.MockTargetService, *mocks.MockActivityService, http.Handler) {
	targets := new(mocks.MockTargetService)
	activity := new(mocks.MockActivityService)
	return targets, activity, newTestRouter(NewTrackingHandler(targets, activity, zaptest.NewLogger(t)))
}

func TestGetTargetNone(t *testing.T) {
	targets, _, router := setupTrackingTest(t)
	userID := uuid.New()
	targets.On("GetActiveTarget", mock.Anything, userID).Return(nil, nil)

	w := performRequest(router, http.MethodGet, "/daily-targets/"+userID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","target":null,"message":"No active target found"}`, w.Body.String())
}

func TestGetTarget(t *testing.T) {
	targets, _, router := setupTrackingTest(t)
	userID := uuid.New()
	targets.On("GetActiveTarget", mock.Anything, userID).Return(&models.DailyTarget{
		ID: uuid.New(), UserID: userID, CaloriesTarget: 2000, ProteinTarget: 120, Active: true,
	}, nil)

	w := performRequest(router, http.MethodGet, "/daily-targets/"+userID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	target := decodeBody(t, w)["target"].(map[string]interface{})
	assert.Equal(t, 2000.0, target["calories_target"])
	assert.Equal(t, true, target["active"])
}

func TestCreateTarget(t *testing.T) {
	targets, _, router := setupTrackingTest(t)
	userID := uuid.New()
	targets.On("SetTarget", mock.Anything, userID, 1800, 0).Return(&models.DailyTarget{
		ID: uuid.New(), UserID: userID, CaloriesTarget: 1800, Active: true,
	}, nil)

	w := performRequest(router, http.MethodPost, "/daily-targets/"+userID.String(), map[string]int{"calories_target": 1800})

	assert.Equal(t, http.StatusOK, w.Code)
	targets.AssertExpectations(t)
}

func TestCreateTargetErrors(t *testing.T) {
	t.Run("negative value", func(t *testing.T) {
		targets, _, router := setupTrackingTest(t)
		w := performRequest(router, http.MethodPost, "/daily-targets/"+uuid.NewString(), map[string]int{"calories_target": -5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		targets.AssertNotCalled(t, "SetTarget", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, _, router := setupTrackingTest(t)
		w := performRequest(router, http.MethodPost, "/daily-targets/42", map[string]int{"calories_target": 2000})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		targets, _, router := setupTrackingTest(t)
		targets.On("SetTarget", mock.Anything, mock.Anything, 2000, 0).Return(nil, service.ErrUserNotFound)
		w := performRequest(router, http.MethodPost, "/daily-targets/"+uuid.NewString(), map[string]int{"calories_target": 2000})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetTodayActivity(t *testing.T) {
	_, activity, router := setupTrackingTest(t)
	userID := uuid.New()
	activity.On("GetToday", mock.Anything, userID).Return(&models.DailyActivity{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityDate: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}, nil)

	w := performRequest(router, http.MethodGet, "/daily-activity/"+userID.String()+"/today", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)["activity"].(map[string]interface{})
	assert.Equal(t, "2026-10-15", body["activity_date"])
	assert.Equal(t, 0.0, body["calories_consumed"])
	assert.Equal(t, false, body["completed"])
}

func TestUpdateTodayActivity(t *testing.T) {
	_, activity, router := setupTrackingTest(t)
	userID := uuid.New()
	activity.On("UpdateToday", mock.Anything, userID, 0, 45).Return(&models.DailyActivity{
		ID: uuid.New(), UserID: userID, ProteinConsumed: 45,
	}, nil)

	w := performRequest(router, http.MethodPut, "/daily-activity/"+userID.String()+"/today",
		map[string]int{"calories_consumed": 0, "protein_consumed": 45})

	assert.Equal(t, http.StatusOK, w.Code)
	activity.AssertExpectations(t)
}

func TestUpdateTodayActivityValidation(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"missing protein", map[string]int{"calories_consumed": 100}},
		{"negative calories", map[string]int{"calories_consumed": -1, "protein_consumed": 1}},
		{"wrong type", `{"calories_consumed":"lots","protein_consumed":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, activity, router := setupTrackingTest(t)
			w := performRequest(router, http.MethodPut, "/daily-activity/"+uuid.NewString()+"/today", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			activity.AssertNotCalled(t, "UpdateToday", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTrackingTimeout(t *testing.T) {
	_, activity, router := setupTrackingTest(t)
	activity.On("GetToday", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	w := performRequest(router, http.MethodGet, "/daily-activity/"+uuid.NewString()+"/today", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
