package stakecube

import (
	"io"
	"testing"

	"github.com/nikandfor/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := invalid("ohlc data", "interval", "2h", "1m", "1h")
	assert.Equal(t, `ohlc data: validation: interval: invalid value "2h" (allowed: 1m, 1h)`, err.Error())

	err = &Error{Kind: Transport, Op: "account", Status: 401, Err: io.EOF}
	assert.Equal(t, "account: transport: status 401: EOF", err.Error())

	err = &Error{Kind: Authentication, Op: "account", Err: ErrNotLoggedIn}
	assert.Contains(t, err.Error(), "account: authentication: ")

	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestIsKind(t *testing.T) {
	err := errors.Wrap(&Error{Kind: Transport, Err: io.EOF}, "call")

	assert.True(t, IsKind(err, Transport))
	assert.False(t, IsKind(err, Validation))
	assert.False(t, IsKind(io.EOF, Transport))
	assert.False(t, IsKind(nil, Transport))

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.ErrorIs(t, err, io.EOF)
}
