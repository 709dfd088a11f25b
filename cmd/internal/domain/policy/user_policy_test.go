package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserPolicy_NewUser(t *testing.T) {
	user := NewUserPolicy().NewUser("id", "Diego", "diego@email.com", 42)
	require.False(t, user.Admin)
	require.Equal(t, int64(42), user.CreatedAt)
	require.Equal(t, int64(42), user.UpdatedAt)
}

func TestUserPolicy_PromoteToAdmin(t *testing.T) {
	p := NewUserPolicy()
	user := p.NewUser("id", "Diego", "diego@email.com", 1)

	require.True(t, p.PromoteToAdmin(user, 2))
	require.True(t, user.Admin)
	require.Equal(t, int64(2), user.UpdatedAt)

	// Already an admin: only the timestamp moves.
	require.False(t, p.PromoteToAdmin(user, 3))
	require.True(t, user.Admin)
	require.Equal(t, int64(3), user.UpdatedAt)
	require.Equal(t, int64(1), user.CreatedAt)
}
