package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Generate(42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, codec.Validate(token, 42))
}

func TestTokenCodecWrongUser(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Generate(42, time.Hour)
	require.NoError(t, err)

	assert.False(t, codec.Validate(token, 43))
}

func TestTokenCodecExpired(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Generate(42, -time.Minute)
	require.NoError(t, err)

	assert.False(t, codec.Validate(token, 42))
}

func TestTokenCodecWrongSecret(t *testing.T) {
	codec := NewTokenCodec("test-secret")
	other := NewTokenCodec("other-secret")

	token, err := other.Generate(42, time.Hour)
	require.NoError(t, err)

	assert.False(t, codec.Validate(token, 42))
}

func TestTokenCodecMalformed(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	assert.False(t, codec.Validate("", 42))
	assert.False(t, codec.Validate("not-a-token", 42))
	assert.False(t, codec.Validate("aaaa.bbbb.cccc", 42))
}

func TestTokenCodecDefaultExpiry(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Generate(7, 0)
	require.NoError(t, err)

	assert.True(t, codec.Validate(token, 7))
}
