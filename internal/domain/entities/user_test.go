package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserNormalizesEmail(t *testing.T) {
	user := NewUser("Test User", "  Test@Example.COM ")

	assert.Equal(t, "test@example.com", user.Email)
	assert.False(t, user.IsPro)
	assert.NotEqual(t, user.Id.String(), "00000000-0000-0000-0000-000000000000")
}

func TestSetPasswordStoresOnlyHash(t *testing.T) {
	user := NewUser("Test User", "test@example.com")

	err := user.SetPassword("password123")
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	user := NewUser("Test User", "test@example.com")
	require.NoError(t, user.SetPassword("password123"))

	assert.NoError(t, user.CheckPassword("password123"))
	assert.Error(t, user.CheckPassword("password124"))
	assert.Error(t, user.CheckPassword(""))
}

func TestSetPasswordSaltsPerCall(t *testing.T) {
	a := NewUser("A", "a@example.com")
	b := NewUser("B", "b@example.com")
	require.NoError(t, a.SetPassword("password123"))
	require.NoError(t, b.SetPassword("password123"))

	// Same plaintext, different salts, different hashes.
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
}

func TestValidatedUserRejectsIncompleteUser(t *testing.T) {
	user := NewUser("", "test@example.com")
	require.NoError(t, user.SetPassword("password123"))

	_, err := NewValidatedUser(user)
	assert.Error(t, err)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	user := NewUser("Test User", "test@example.com")
	require.NoError(t, user.SetPassword("password123"))

	require.NoError(t, user.UpdateProfile("New Name", ""))
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "test@example.com", user.Email)

	require.NoError(t, user.UpdateProfile("", "Other@Example.com"))
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "other@example.com", user.Email)
}
