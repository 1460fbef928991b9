package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	user, err := CreateUser("alice", "Alice", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserRejectsShortUsername(t *testing.T) {
	_, err := CreateUser("ab", "Alice", "secret123")

	assert.Error(t, err)
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	_, err := CreateUser("alice", "Alice", "short")

	assert.Error(t, err)
}

func TestSetPassword(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("new-password"))

	assert.True(t, user.CheckPassword("new-password"))
	assert.False(t, user.CheckPassword("old-password"))
}
