package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))

	token, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	err = j.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := New(WithSecretKey("secret-a"), WithExpiration(time.Minute))
	other := New(WithSecretKey("secret-b"), WithExpiration(time.Minute))

	token, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	err = other.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_UniqueTokenIDs(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()
	userID := uuid.New()

	t1, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	t2, err := j.Generate(ctx, userID)
	assert.NoError(t, err)

	c1, err := j.GetClaims(ctx, t1)
	assert.NoError(t, err)
	c2, err := j.GetClaims(ctx, t2)
	assert.NoError(t, err)

	assert.NotEqual(t, c1.TokenID, c2.TokenID)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer sometoken", want: "sometoken"},
		{name: "lowercase bearer", header: "bearer sometoken", want: "sometoken"},
		{name: "missing header", header: "", wantErr: true},
		{name: "no token part", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
