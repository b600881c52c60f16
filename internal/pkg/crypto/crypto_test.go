package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainEncoder(t *testing.T) {
	enc, err := NewPasswordEncoder("plain")
	require.NoError(t, err)

	encoded, err := enc.Encode("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", encoded)
	assert.True(t, enc.Matches("secret", "secret"))
	assert.False(t, enc.Matches("Secret", "secret"))
	assert.False(t, enc.Matches("", "secret"))
}

func TestBcryptEncoder(t *testing.T) {
	enc, err := NewPasswordEncoder(" BCRYPT ")
	require.NoError(t, err)

	encoded, err := enc.Encode("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", encoded)
	assert.True(t, enc.Matches("secret", encoded))
	assert.False(t, enc.Matches("wrong", encoded))
}

func TestNewPasswordEncoder_Default(t *testing.T) {
	enc, err := NewPasswordEncoder("")
	require.NoError(t, err)
	assert.IsType(t, plainEncoder{}, enc)

	_, err = NewPasswordEncoder("md5")
	assert.Error(t, err)
}
