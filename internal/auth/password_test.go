package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret", 4)

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73), 4)

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHashPassword_Salted(t *testing.T) {
	hash1, err := HashPassword("secret", 4)
	require.NoError(t, err)
	hash2, err := HashPassword("secret", 4)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret", 4)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword("secret", hash))
	assert.ErrorIs(t, CheckPassword("wrong", hash), ErrInvalidPassword)
}

func TestUsernamePolicy(t *testing.T) {
	policy := UsernamePolicy{}

	assert.True(t, policy.IsAdminUsername("admin"))
	assert.False(t, policy.IsAdminUsername("Admin"))
	assert.False(t, policy.IsAdminUsername("administrator"))
	assert.False(t, policy.IsAdminUsername("alice"))
	assert.False(t, policy.IsAdminUsername(""))
}
