package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_NonDeterministic(t *testing.T) {
	first, err := HashPassword("secret1")
	assert.NoError(t, err)
	second, err := HashPassword("secret1")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, "secret1", first)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("secret1", "not-a-hash"))
}
