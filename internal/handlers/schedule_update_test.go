package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/psokolova/meetsync/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateScheduleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	schedule := models.Schedule{"monday": make([]bool, models.SlotsPerDay)}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockScheduleUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, schedule).
			Return(nil)

		handler := NewUpdateScheduleHandler(mockSvc, authedTokener(ctrl, userID))

		bodyBytes, _ := json.Marshal(UpdateScheduleRequest{Schedule: schedule})
		req := httptest.NewRequest(http.MethodPost, "/update/schedule", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message": "Schedule updated"}`, rr.Body.String())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		bad := models.Schedule{"funday": make([]bool, models.SlotsPerDay)}

		mockSvc := NewMockScheduleUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, bad).
			Return(services.ErrInvalidSchedule)

		handler := NewUpdateScheduleHandler(mockSvc, authedTokener(ctrl, userID))

		bodyBytes, _ := json.Marshal(UpdateScheduleRequest{Schedule: bad})
		req := httptest.NewRequest(http.MethodPost, "/update/schedule", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing schedule field", func(t *testing.T) {
		handler := NewUpdateScheduleHandler(NewMockScheduleUpdater(ctrl), authedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodPost, "/update/schedule", bytes.NewBufferString("{}"))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error": "invalid request body"}`, rr.Body.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewUpdateScheduleHandler(NewMockScheduleUpdater(ctrl), authedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodPost, "/update/schedule", bytes.NewBufferString("{not json"))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
