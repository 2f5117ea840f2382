package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_SixDecimalDigits(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code, err := GenerateOTP(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected character %q in %q", r, code)
		}
	}
}

func TestGenerateOTP_NotConstant(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP(6)
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}
