package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckPassword(t *testing.T) {
	hash, err := HashPasswordWithCost("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "matching password", password: "s3cret-pass", want: true},
		{name: "wrong password", password: "s3cret-pasS", want: false},
		{name: "empty password", password: "", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckPassword(hash, tc.password))
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPasswordWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPasswordWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same"))
	assert.True(t, CheckPassword(second, "same"))
}

func TestCheckPassword_PlaintextStoredValue(t *testing.T) {
	// rows written before hashing was introduced never match
	assert.False(t, CheckPassword("plain", "plain"))
}
