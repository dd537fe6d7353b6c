package stakecube

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	var p Params
	assert.Equal(t, "", p.String())

	p.AddInt("nonce", 1700000000000).
		Add("market", "SCC_BTC").
		Add("side", "BUY").
		AddDecimal("price", decimal.RequireFromString("0.00001230")).
		AddDecimal("amount", decimal.New(15, 0))

	assert.Equal(t, 5, p.Len())
	assert.Equal(t, "nonce=1700000000000&market=SCC_BTC&side=BUY&price=0.0000123&amount=15", p.String())
}

func TestParamsKeepOrder(t *testing.T) {
	p := (&Params{}).
		AddInt("orderId", 2).
		AddInt("nonce", 5)

	assert.Equal(t, "orderId=2&nonce=5", p.String())

	p = (&Params{}).
		Add("coin", "")

	assert.Equal(t, "coin=", p.String())
}

func TestParamsCheck(t *testing.T) {
	p := (&Params{}).
		AddInt("nonce", 1700000000000).
		Add("ticker", "SCC").
		Add("address", "sXyZ_123-abc.def:ghi").
		Add("side", "")

	require.NoError(t, p.check("withdraw"))
	assert.Equal(t, "nonce=1700000000000&ticker=SCC&address=sXyZ_123-abc.def:ghi&side=", p.String())

	for _, v := range []string{
		"addr&amount=999",
		"a=b",
		"SCC#frag",
		"SCC?x",
		"SCC BTC",
		"SCC\tBTC",
		"SCC\nBTC",
		"SCC\u00a0BTC",
		"SCC\x00",
		"SCC\x7f",
		"a+b",
		"a%26b",
	} {
		err := (&Params{}).Add("v", v).check("op")
		assert.True(t, IsKind(err, Validation), "%q: %v", v, err)

		var e *Error
		if assert.ErrorAs(t, err, &e, v) {
			assert.Equal(t, "v", e.Field)
			assert.Equal(t, v, e.Value)
		}
	}
}
