package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	eventID := uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockEventDeleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:   "success",
			target: "/event/delete/" + eventID.String(),
			mockSetup: func(m *MockEventDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), eventID, userID).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Event deleted"},
		},
		{
			name:   "another user's event",
			target: "/event/delete/" + eventID.String(),
			mockSetup: func(m *MockEventDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), eventID, userID).
					Return(services.ErrEventNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "event not found"},
		},
		{
			name:         "invalid event id",
			target:       "/event/delete/42",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid event id"},
		},
		{
			name:   "internal server error",
			target: "/event/delete/" + eventID.String(),
			mockSetup: func(m *MockEventDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), eventID, userID).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEventDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Post("/event/delete/{id}", NewDeleteEventHandler(mockSvc, authedTokener(ctrl, userID)))

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
