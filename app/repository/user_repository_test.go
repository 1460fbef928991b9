package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherpress/featherpress/app/models"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &models.User{Username: "alice", DisplayName: "Alice", Password: "hash"}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Alice", got.DisplayName)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.User{Username: "alice", DisplayName: "Alice", Password: "hash"}))

	err := repo.Create(&models.User{Username: "alice", DisplayName: "Other Alice", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &models.User{Username: "alice", DisplayName: "Alice", Password: "hash"}
	require.NoError(t, repo.Create(user))

	user.DisplayName = "Alice B."
	require.NoError(t, repo.Update(user))

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", got.DisplayName)
}
