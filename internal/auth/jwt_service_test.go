package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crms/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Generate("user-id-1", "a@x.com", model.RoleOfficer, UserTokenExpiry)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-id-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.RoleOfficer, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(UserTokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_AdminToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Generate("", "admin@example.com", model.RoleAdmin, AdminTokenExpiry)
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Empty(t, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(AdminTokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Generate("user-id-1", "a@x.com", model.RoleOfficer, -time.Minute)
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims, err := svc.Validate("not-a-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.Generate("user-id-1", "a@x.com", model.RoleOfficer, UserTokenExpiry)
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
