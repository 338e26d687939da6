package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/calorielens/backend/config"
	"github.com/pageza/calorielens/backend/internal/mocks"
	"github.com/pageza/calorielens/backend/internal/models"
	"github.com/pageza/calorielens/backend/internal/server"
	"github.com/pageza/calorielens/backend/internal/service"
	"github.com/pageza/calorielens/backend/internal/testhelpers"
)

const workers = 10

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:                 config.Test,
		ServerPort:          "0",
		RequestTimeout:      10 * time.Second,
		MaxUploadBytes:      1 << 20,
		DBQueryTimeout:      2 * time.Second,
		Timezone:            time.UTC,
		AllowedEmailDomains: config.DefaultAllowedEmailDomains,
	}
	srv, err := server.New(cfg, server.Dependencies{
		DB:         db,
		Classifier: new(mocks.MockClassifier),
		Hasher:     service.NewBcryptHasher(bcrypt.MinCost),
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return srv.Router()
}

func send(router http.Handler, method, path string, body interface{}) int {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

// concurrently fires fn from every worker at once and collects status codes.
func concurrently(fn func(i int) int) []int {
	codes := make([]int, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			codes[i] = fn(i)
		}(i)
	}
	close(start)
	wg.Wait()
	return codes
}

func count(codes []int, code int) int {
	n := 0
	for _, c := range codes {
		if c == code {
			n++
		}
	}
	return n
}

func TestIntegrationConcurrentSignupSameEmail(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	router := setupRouter(t, db)

	codes := concurrently(func(i int) int {
		return send(router, http.MethodPost, "/auth/signup", map[string]string{
			"username": fmt.Sprintf("racer%d", i),
			"email":    "racer@gmail.com",
			"password": "password123",
		})
	})

	assert.Equal(t, 1, count(codes, http.StatusOK))
	assert.Equal(t, workers-1, count(codes, http.StatusBadRequest))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "racer@gmail.com").Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestIntegrationConcurrentTargetsLeaveOneActive(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	router := setupRouter(t, db)
	user := testhelpers.CreateUser(t, db, "targeter", "targeter@gmail.com")

	codes := concurrently(func(i int) int {
		return send(router, http.MethodPost, "/daily-targets/"+user.ID.String(), map[string]int{
			"calories_target": 1800 + i, "protein_target": 100,
		})
	})
	assert.Equal(t, workers, count(codes, http.StatusOK))

	var active, total int64
	require.NoError(t, db.Model(&models.DailyTarget{}).Where("user_id = ? AND active", user.ID).Count(&active).Error)
	require.NoError(t, db.Model(&models.DailyTarget{}).Where("user_id = ?", user.ID).Count(&total).Error)
	assert.Equal(t, int64(1), active)
	assert.Equal(t, int64(workers), total)
}

func TestIntegrationConcurrentActivityCreatesOneRow(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	router := setupRouter(t, db)
	user := testhelpers.CreateUser(t, db, "tracker", "tracker@gmail.com")
	path := "/daily-activity/" + user.ID.String() + "/today"

	codes := concurrently(func(i int) int {
		if i%2 == 0 {
			return send(router, http.MethodGet, path, nil)
		}
		return send(router, http.MethodPut, path, map[string]int{"calories_consumed": i * 100, "protein_consumed": i})
	})
	assert.Equal(t, workers, count(codes, http.StatusOK))

	var rows int64
	require.NoError(t, db.Model(&models.DailyActivity{}).Where("user_id = ?", user.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestIntegrationUnknownUser(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	router := setupRouter(t, db)
	missing := "/daily-activity/00000000-0000-0000-0000-000000000001/today"

	assert.Equal(t, http.StatusNotFound, send(router, http.MethodGet, missing, nil))
	assert.Equal(t, http.StatusNotFound, send(router, http.MethodPut, missing,
		map[string]int{"calories_consumed": 1, "protein_consumed": 1}))
	assert.Equal(t, http.StatusNotFound, send(router, http.MethodPost,
		"/daily-targets/00000000-0000-0000-0000-000000000001", map[string]int{"calories_target": 1}))
}
