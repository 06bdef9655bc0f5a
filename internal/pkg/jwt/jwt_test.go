package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	employeeID := int64(42)
	token, expiresAt, err := svc.GenerateAccessToken(7, "0812345678", user.RoleEmployee, &employeeID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "0812345678", claims["username"])
	assert.Equal(t, string(user.RoleEmployee), claims["role"])

	userID, ok := UserIDFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestGenerateAccessToken_NoEmployeeID(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAccessToken(1, "admin", user.RoleAdmin, nil)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	_, hasEmployeeID := claims["employee_id"]
	assert.False(t, hasEmployeeID)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken(1, "admin", user.RoleAdmin, nil)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAccessToken(1, "admin", user.RoleAdmin, nil)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestUserIDFromClaims(t *testing.T) {
	// jwx hands numeric claims back as float64.
	id, ok := UserIDFromClaims(map[string]interface{}{"user_id": float64(9)})
	require.True(t, ok)
	assert.Equal(t, int64(9), id)

	_, ok = UserIDFromClaims(map[string]interface{}{"user_id": "9"})
	assert.False(t, ok)

	_, ok = UserIDFromClaims(map[string]interface{}{})
	assert.False(t, ok)
}
