package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-management-server/config"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	assert.Nil(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken(42, "guest@hotel.local", "customer")
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	assert.Nil(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "guest@hotel.local", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(42, "guest@hotel.local", "customer")
	assert.Nil(t, err)

	_, err = VerifyToken(token + "x")
	assert.NotNil(t, err)

	_, err = VerifyToken("not-a-token")
	assert.NotNil(t, err)
}
