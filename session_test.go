package stakecube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLogin(t *testing.T) {
	s := NewSession("", nil)
	assert.False(t, s.IsAuthenticated())

	assert.True(t, s.Login("K", []byte("S")))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "K", s.Key())

	s.Login("K", nil)
	assert.False(t, s.IsAuthenticated())

	s.Login("", []byte("S"))
	assert.False(t, s.IsAuthenticated())

	var nilSession *Session
	assert.False(t, nilSession.IsAuthenticated())
}

func TestSessionSign(t *testing.T) {
	s := NewSession("K", []byte("S"))

	sig, err := s.Sign("nonce=1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "5d587096b7f7f8e3574d7a1a46959f3e3988180ab46c0c4fc1a12c29555ed0f8", sig)

	again, err := s.Sign("nonce=1700000000000")
	require.NoError(t, err)
	assert.Equal(t, sig, again)

	other, err := s.Sign("nonce=1700000000001")
	require.NoError(t, err)
	assert.NotEqual(t, sig, other)

	s.Login("K", []byte("S2"))

	other, err = s.Sign("nonce=1700000000000")
	require.NoError(t, err)
	assert.NotEqual(t, sig, other)

	sig, err = NewSession("key", []byte("secret")).Sign("nonce=1&market=SCC_BTC")
	require.NoError(t, err)
	assert.Equal(t, "73224af3168f86c9757271790e514665e2fc51087e4fd58ae8367dc2823c48dc", sig)
}

func TestSessionSignNoSecret(t *testing.T) {
	_, err := NewSession("K", nil).Sign("nonce=1")
	require.Error(t, err)

	assert.True(t, IsKind(err, Configuration))
	assert.ErrorIs(t, err, ErrNoSecret)
}
