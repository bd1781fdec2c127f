package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/psokolova/meetsync/internal/jwt"
	"github.com/psokolova/meetsync/internal/models"
	"github.com/psokolova/meetsync/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
			wantErr:  nil,
		},
		{
			name:         "username or email taken",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name         string
		username     string
		loginPass    string
		next         string
		user         *models.UserDB
		readerErr    error
		jwtErr       error
		wantToken    string
		wantRedirect string
		wantErr      error
	}{
		{
			name:         "successful login",
			username:     "alice",
			loginPass:    password,
			user:         &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantToken:    "token123",
			wantRedirect: "/index",
		},
		{
			name:         "next kept when same-origin path",
			username:     "alice",
			loginPass:    password,
			next:         "/event/view",
			user:         &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantToken:    "token123",
			wantRedirect: "/event/view",
		},
		{
			name:         "absolute next falls back to default",
			username:     "alice",
			loginPass:    password,
			next:         "https://evil.example/phish",
			user:         &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantToken:    "token123",
			wantRedirect: "/index",
		},
		{
			name:         "protocol-relative next falls back to default",
			username:     "alice",
			loginPass:    password,
			next:         "//evil.example/phish",
			user:         &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantToken:    "token123",
			wantRedirect: "/index",
		},
		{
			name:      "unknown user",
			username:  "ghost",
			loginPass: password,
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			user:      &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, nil).
				Return(tt.user, tt.readerErr)

			if tt.readerErr == nil && tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, redirect, err := svc.Login(context.Background(), tt.username, tt.loginPass, tt.next)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	t.Run("revokes token by id", func(t *testing.T) {
		claims := &jwt.Claims{
			UserID:    uuid.New(),
			TokenID:   "jti-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		mockJWT.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(claims, nil)
		mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-1", gomock.Any()).Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "valid-token"))
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		mockJWT.EXPECT().GetClaims(gomock.Any(), "garbage").Return(nil, errors.New("bad token"))

		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})

	t.Run("revoker error is surfaced", func(t *testing.T) {
		claims := &jwt.Claims{
			UserID:    uuid.New(),
			TokenID:   "jti-2",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		mockJWT.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(claims, nil)
		mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-2", gomock.Any()).Return(errors.New("redis down"))

		assert.EqualError(t, svc.Logout(context.Background(), "valid-token"), "redis down")
	})
}
