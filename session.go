package stakecube

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/nikandfor/errors"
)

type (
	// Session holds api credentials.
	// It's expected to be configured once before private calls are made
	// and is not safe for concurrent Login.
	Session struct {
		key    string
		secret []byte
	}
)

var ErrNoSecret = errors.New("hmac secret is not set")

func NewSession(key string, secret []byte) *Session {
	return &Session{
		key:    key,
		secret: secret,
	}
}

// Login replaces credentials. Values are not checked.
func (s *Session) Login(key string, secret []byte) bool {
	s.key = key
	s.secret = secret

	return true
}

func (s *Session) Key() string { return s.key }

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.key != "" && len(s.secret) != 0
}

// Sign returns lowercase hex HMAC-SHA256 of canonical keyed by the secret.
func (s *Session) Sign(canonical string) (string, error) {
	if s == nil || len(s.secret) == 0 {
		return "", &Error{Kind: Configuration, Field: "secret", Err: ErrNoSecret}
	}

	h := hmac.New(sha256.New, s.secret)

	_, _ = h.Write([]byte(canonical))

	sum := h.Sum(nil)

	return hex.EncodeToString(sum), nil
}
