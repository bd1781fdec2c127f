package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestEditEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	eventID := uuid.New()

	body := EditEventRequest{
		Title:       "Standup",
		Description: "Daily sync",
		Date:        "12/25/2025",
		StartTime:   "09:00",
		EndTime:     "09:30",
	}

	tests := []struct {
		name         string
		target       string
		reqBody      EditEventRequest
		mockSetup    func(m *MockEventEditor)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			target:  "/event/edit/" + eventID.String(),
			reqBody: body,
			mockSetup: func(m *MockEventEditor) {
				m.EXPECT().
					Edit(gomock.Any(), eventID, userID, "Standup", "Daily sync", "12/25/2025", "09:00", "09:30").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Event edited"},
		},
		{
			name:    "another user's event",
			target:  "/event/edit/" + eventID.String(),
			reqBody: body,
			mockSetup: func(m *MockEventEditor) {
				m.EXPECT().
					Edit(gomock.Any(), eventID, userID, "Standup", "Daily sync", "12/25/2025", "09:00", "09:30").
					Return(services.ErrEventNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "event not found"},
		},
		{
			name:   "bad date",
			target: "/event/edit/" + eventID.String(),
			reqBody: EditEventRequest{
				Title:     "Standup",
				Date:      "2025-12-25",
				StartTime: "09:00",
				EndTime:   "09:30",
			},
			mockSetup: func(m *MockEventEditor) {
				m.EXPECT().
					Edit(gomock.Any(), eventID, userID, "Standup", "", "2025-12-25", "09:00", "09:30").
					Return(services.ErrInvalidEventDate)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": services.ErrInvalidEventDate.Error()},
		},
		{
			name:         "invalid event id",
			target:       "/event/edit/not-a-uuid",
			reqBody:      body,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid event id"},
		},
		{
			name:         "missing title",
			target:       "/event/edit/" + eventID.String(),
			reqBody:      EditEventRequest{Date: "12/25/2025", StartTime: "09:00", EndTime: "09:30"},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEventEditor(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Post("/event/edit/{id}", NewEditEventHandler(mockSvc, authedTokener(ctrl, userID)))

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
