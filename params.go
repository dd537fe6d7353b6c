package stakecube

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

type (
	// Params is an ordered key=value list.
	// Order is part of the signed text, so it's kept exactly as added.
	Params struct {
		kv []param
	}

	param struct {
		k, v string
	}
)

func (p *Params) Add(k, v string) *Params {
	p.kv = append(p.kv, param{k: k, v: v})

	return p
}

func (p *Params) AddInt(k string, v int64) *Params {
	return p.Add(k, strconv.FormatInt(v, 10))
}

func (p *Params) AddDecimal(k string, v decimal.Decimal) *Params {
	return p.Add(k, v.String())
}

func (p *Params) Len() int { return len(p.kv) }

// String returns pairs joined with '&'. Values are not escaped:
// the server checks the signature against the text it receives.
func (p *Params) String() string {
	var b strings.Builder

	for i, q := range p.kv {
		if i != 0 {
			b.WriteByte('&')
		}

		b.WriteString(q.k)
		b.WriteByte('=')
		b.WriteString(q.v)
	}

	return b.String()
}

// check rejects values which would change the meaning of the text
// once it's on the wire.
func (p *Params) check(op string) error {
	for _, q := range p.kv {
		if strings.IndexFunc(q.v, unsafeRune) != -1 {
			return invalid(op, q.k, q.v)
		}
	}

	return nil
}

func unsafeRune(r rune) bool {
	switch r {
	case '&', '=', '#', '?', '+', '%':
		return true
	}

	return unicode.IsSpace(r) || unicode.IsControl(r)
}
