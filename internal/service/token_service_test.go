package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-api/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims *models.JWTClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func freshClaims() *models.JWTClaims {
	return &models.JWTClaims{
		UserID: "user-1",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestValidateAcceptsSignedToken(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: testSecret}, nil)

	claims, err := svc.Validate(signToken(t, testSecret, freshClaims()))

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: testSecret}, nil)

	_, err := svc.Validate(signToken(t, "other-secret", freshClaims()))

	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: testSecret}, nil)

	claims := freshClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	_, err := svc.Validate(signToken(t, testSecret, claims))

	require.Error(t, err)
}

func TestValidateRejectsMissingUserID(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: testSecret}, nil)

	claims := freshClaims()
	claims.UserID = ""

	_, err := svc.Validate(signToken(t, testSecret, claims))

	require.Error(t, err)
}

func TestValidateEnforcesIssuer(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: testSecret, Issuer: "shiftdesk-idp"}, nil)

	_, err := svc.Validate(signToken(t, testSecret, freshClaims()))
	require.Error(t, err)

	claims := freshClaims()
	claims.Issuer = "shiftdesk-idp"
	validated, err := svc.Validate(signToken(t, testSecret, claims))
	require.NoError(t, err)
	assert.Equal(t, "user-1", validated.UserID)
}
