package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cretpw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, ComparePassword(hash, "s3cretpw"))
	assert.False(t, ComparePassword(hash, "wrongpw"))
}
