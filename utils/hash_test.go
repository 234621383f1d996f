package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22!")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22!", hash)

	require.True(t, CheckPasswordHash("hunter22!", hash))
	require.False(t, CheckPasswordHash("hunter23!", hash))
	require.False(t, CheckPasswordHash("hunter22!", "not-a-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	a := GenerateRandomToken(32)
	b := GenerateRandomToken(32)
	require.Len(t, a, 32)
	require.Len(t, b, 32)
	require.NotEqual(t, a, b)
}
