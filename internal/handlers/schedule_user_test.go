package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/psokolova/meetsync/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserScheduleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("returns the named user's schedule", func(t *testing.T) {
		schedule := models.Schedule{"monday": make([]bool, models.SlotsPerDay)}

		mockSvc := NewMockUserScheduleGetter(ctrl)
		mockSvc.EXPECT().
			GetByUsername(gomock.Any(), "bob").
			Return(schedule, nil)

		router := chi.NewRouter()
		router.Get("/get/schedule/{username}", NewUserScheduleHandler(mockSvc, authedTokener(ctrl, userID)))

		req := httptest.NewRequest(http.MethodGet, "/get/schedule/bob", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got ScheduleResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, schedule, got.Schedule)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc := NewMockUserScheduleGetter(ctrl)
		mockSvc.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, services.ErrUserNotFound)

		router := chi.NewRouter()
		router.Get("/get/schedule/{username}", NewUserScheduleHandler(mockSvc, authedTokener(ctrl, userID)))

		req := httptest.NewRequest(http.MethodGet, "/get/schedule/ghost", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": "user not found"}`, rr.Body.String())
	})
}

func TestToggleStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSvc := NewMockStatusToggler(ctrl)
	mockSvc.EXPECT().
		ToggleStatus(gomock.Any(), userID).
		Return(false, nil)

	handler := NewToggleStatusHandler(mockSvc, authedTokener(ctrl, userID))

	req := httptest.NewRequest(http.MethodPost, "/update/status", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": false}`, rr.Body.String())
}
