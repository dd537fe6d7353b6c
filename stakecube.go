package stakecube

import (
	"net/http"
	"time"
)

type (
	// Client is a StakeCube REST api client.
	// Public endpoints work without credentials,
	// private ones need the Session to be logged in.
	Client struct {
		BaseURL   string
		UserAgent string

		HTTPClient *http.Client

		// Now is used for nonces.
		Now func() time.Time

		sess *Session
	}
)

const (
	BaseURL   = "https://stakecube.io/api/v2"
	UserAgent = "StakeCube Go Library"
)

// New creates a client. If s is nil an empty Session is used
// so credentials can be set with Login later.
func New(s *Session) *Client {
	if s == nil {
		s = &Session{}
	}

	return &Client{
		BaseURL:    BaseURL,
		UserAgent:  UserAgent,
		HTTPClient: http.DefaultClient,
		Now:        time.Now,
		sess:       s,
	}
}

func (c *Client) Session() *Session { return c.sess }

func (c *Client) Login(key string, secret []byte) bool {
	return c.sess.Login(key, secret)
}

func (c *Client) IsAuthenticated() bool { return c.sess.IsAuthenticated() }

func (c *Client) nonce() int64 {
	return c.Now().UnixNano() / int64(time.Millisecond)
}
