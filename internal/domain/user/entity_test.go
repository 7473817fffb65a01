//go:build unit

package user_test

import (
	"strings"
	"testing"

	"hotel-booking-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsername(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "simple name ok", input: "alice"},
		{name: "dots dashes underscores ok", input: "a.b-c_d"},
		{name: "minimum length ok", input: "abc"},
		{name: "maximum length ok", input: strings.Repeat("a", 32)},
		{name: "surrounding whitespace trimmed", input: "  alice  "},
		{name: "too short rejected", input: "ab", errIs: user.ErrInvalidUsername},
		{name: "too long rejected", input: strings.Repeat("a", 33), errIs: user.ErrInvalidUsername},
		{name: "empty rejected", input: "", errIs: user.ErrInvalidUsername},
		{name: "spaces inside rejected", input: "ali ce", errIs: user.ErrInvalidUsername},
		{name: "special characters rejected", input: "alice!", errIs: user.ErrInvalidUsername},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, err := user.NewUsername(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.input), name.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("8 chars ok", func(t *testing.T) {
		p, err := user.NewPassword("password")
		require.NoError(t, err)
		assert.Equal(t, "password", p.Value())
	})

	t.Run("7 chars rejected", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("a", 7))
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewUser(t *testing.T) {
	name, err := user.NewUsername("alice")
	require.NoError(t, err)

	u := user.NewUser(name, "hashed")
	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "alice", u.Username().Value())
	assert.Equal(t, "hashed", u.PasswordHash())
}
