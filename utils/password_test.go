package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("arise123")
	require.NoError(t, err)

	assert.NotEqual(t, "arise123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, CheckPassword(hash, "arise123"))
	assert.False(t, CheckPassword(hash, "arise124"))
	assert.False(t, CheckPassword("not-a-hash", "arise123"))
}

func TestDecodeParam(t *testing.T) {
	decoded, err := DecodeParam("Novice%20Hunter")
	require.NoError(t, err)
	assert.Equal(t, "Novice Hunter", decoded)

	decoded, err = DecodeParam("Assassin")
	require.NoError(t, err)
	assert.Equal(t, "Assassin", decoded)
}
