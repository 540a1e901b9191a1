package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
	claimUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/claim"
	userUseCase "github.com/Akachukwuu/earnquiza/internal/domain/usecase/user"
	"github.com/Akachukwuu/earnquiza/mocks/port/core"
	"github.com/Akachukwuu/earnquiza/mocks/port/persistence"
)

func relaxedLogger() *core.MockLogger {
	l := new(core.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func setupUserRouter(userRepo *persistence.MockUserRepository, tp *core.MockTimeProvider) *gin.Engine {
	logger := relaxedLogger()
	userService := userUseCase.NewService(userRepo, nil, tp, logger)
	claimService := claimUseCase.NewService(userRepo, tp, logger)
	handler := NewUserHandler(userService, claimService, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:userId", handler.GetProfile)
	router.POST("/users/:userId/claim", handler.Claim)
	router.GET("/leaderboard", handler.Leaderboard)
	return router
}

func TestUserHandler_GetProfile(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("should return the profile with claim status", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		router := setupUserRouter(userRepo, tp)

		user, err := entity.NewUser(userID, "jane@example.com", "500.00", "10.00", 6, tp)
		assert.NoError(t, err)
		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "jane@example.com", body["email"])
		assert.Equal(t, "500.00", body["balance"])
		assert.Equal(t, "10.00", body["earn_rate"])

		claim, ok := body["claim"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, true, claim["ready"])
	})

	t.Run("should return 404 for an unknown user", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		router := setupUserRouter(userRepo, tp)

		userRepo.On("GetByID", mock.Anything, userID).Return(nil, errs.ErrUserNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), errs.CodeUserNotFound)
	})

	t.Run("should return 400 for a malformed user id", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		router := setupUserRouter(userRepo, tp)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestUserHandler_Claim(t *testing.T) {
	fixedTime := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("should return 409 while the cooldown is active", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		router := setupUserRouter(userRepo, tp)

		user, err := entity.NewUser(userID, "jane@example.com", "500.00", "10.00", 6, tp)
		assert.NoError(t, err)
		lastClaim := fixedTime.Add(-time.Minute)
		user.LastClaim = &lastClaim

		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/claim", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), errs.CodeCooldownActive)
	})

	t.Run("should return the credited claim", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		router := setupUserRouter(userRepo, tp)

		user, err := entity.NewUser(userID, "jane@example.com", "500.00", "10.00", 6, tp)
		assert.NoError(t, err)
		claimed, err := entity.NewUser(userID, "jane@example.com", "510.00", "10.00", 6, tp)
		assert.NoError(t, err)
		claimed.LastClaim = &fixedTime

		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
		userRepo.On("ApplyClaim", mock.Anything, userID, (*time.Time)(nil), fixedTime).
			Return(claimed, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/claim", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "10.00", body["claimed_amount"])
		assert.Equal(t, "510.00", body["new_balance"])
	})
}

func TestUserHandler_Leaderboard(t *testing.T) {
	t.Run("should return ranked entries", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		router := setupUserRouter(userRepo, tp)

		userRepo.On("TopByBalance", mock.Anything, 10).Return([]entity.LeaderboardEntry{
			{Email: "first@example.com", BalanceCents: 100000},
			{Email: "second@example.com", BalanceCents: 50000},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 2)
		assert.Equal(t, float64(1), body[0]["rank"])
		assert.Equal(t, "first@example.com", body[0]["email"])
		assert.Equal(t, "1000.00", body[0]["balance"])
	})

	t.Run("should reject an out-of-range limit", func(t *testing.T) {
		userRepo := new(persistence.MockUserRepository)
		tp := new(core.MockTimeProvider)
		router := setupUserRouter(userRepo, tp)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=500", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		userRepo.AssertNotCalled(t, "TopByBalance")
	})
}
