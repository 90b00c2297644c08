package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordService_HashAndCompare(t *testing.T) {
	service := NewPasswordService(4)

	hash, err := service.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, service.ComparePassword("s3cret-pass", hash))
	assert.False(t, service.ComparePassword("wrong-pass", hash))
	assert.False(t, service.ComparePassword("s3cret-pass", "not-a-hash"))
}

func TestPasswordService_HashPassword_Validation(t *testing.T) {
	service := NewPasswordService(4)

	_, err := service.HashPassword("")
	assert.ErrorIs(t, err, ErrPasswordEmpty)

	_, err = service.HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = service.HashPassword(strings.Repeat("x", MaxPasswordLength+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordService_InvalidCostFallsBack(t *testing.T) {
	service := NewPasswordService(99)

	hash, err := service.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.True(t, service.ComparePassword("s3cret-pass", hash))
}
