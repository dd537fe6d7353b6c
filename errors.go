package stakecube

import (
	"fmt"
	"strings"

	"github.com/nikandfor/errors"
)

type (
	Kind int

	// Error is returned by every Client call.
	// Kind tells what went wrong, the rest is context for it.
	Error struct {
		Kind Kind
		Op   string

		Field   string
		Value   interface{}
		Allowed []string

		Status int
		Body   []byte

		Err error
	}
)

const (
	_ Kind = iota
	Validation
	Authentication
	Transport
	Configuration
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Authentication:
		return "authentication"
	case Transport:
		return "transport"
	case Configuration:
		return "configuration"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}

	b.WriteString(e.Kind.String())

	switch e.Kind {
	case Validation:
		fmt.Fprintf(&b, ": %s: invalid value %q", e.Field, fmt.Sprint(e.Value))

		if len(e.Allowed) != 0 {
			fmt.Fprintf(&b, " (allowed: %s)", strings.Join(e.Allowed, ", "))
		}
	case Transport:
		if e.Status != 0 {
			fmt.Fprintf(&b, ": status %d", e.Status)
		}
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error

	return errors.As(err, &e) && e.Kind == k
}

func invalid(op, field string, v interface{}, allowed ...string) *Error {
	return &Error{
		Kind:    Validation,
		Op:      op,
		Field:   field,
		Value:   v,
		Allowed: allowed,
	}
}
