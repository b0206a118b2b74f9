package user_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joy095/rental/models/shared_models"
)

func TestNewUser(t *testing.T) {
	t.Run("DefaultsToCustomerRole", func(t *testing.T) {
		user, err := NewUser("jane@example.com", "Jane", "5550100", "hunter2hunter2", "")
		require.NoError(t, err)
		assert.Equal(t, shared_models.RoleCustomer, user.Role)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	})

	t.Run("KeepsExplicitRole", func(t *testing.T) {
		user, err := NewUser("ops@example.com", "Ops", "5550101", "hunter2hunter2", shared_models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, shared_models.RoleAdmin, user.Role)
	})
}

func TestCheckPassword(t *testing.T) {
	user, err := NewUser("jane@example.com", "Jane", "5550100", "correct-horse-battery", "")
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("correct-horse-battery"))
	assert.False(t, user.CheckPassword("wrong-password"))
	assert.False(t, user.CheckPassword(""))
}
