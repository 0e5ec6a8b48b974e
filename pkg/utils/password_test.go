package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashCheckPassword(t *testing.T) {
	h := HashPassword("pa55word")
	require.NotEmpty(t, h)
	require.NotEqual(t, "pa55word", h)

	require.True(t, CheckPassword("pa55word", h))
	require.False(t, CheckPassword("wrong", h))
}

func TestHashIsSalted(t *testing.T) {
	require.NotEqual(t, HashPassword("same"), HashPassword("same"))
}
