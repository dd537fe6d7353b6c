package stakecube

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

type (
	Order struct {
		Market string
		Side   string
		Price  decimal.Decimal
		Amount decimal.Decimal
	}
)

const maxSafeInteger = 1<<53 - 1

var (
	PayoutCoins    = []string{"BTC", "SCC", "DASH", "LTC", "ETH", "DOGE"}
	PaymentMethods = []string{"SCC", "CREDITS"}
)

func (c *Client) Account(ctx context.Context) (json.RawMessage, error) {
	p := (&Params{}).
		AddInt("nonce", c.nonce())

	return c.private(ctx, "account", http.MethodGet, "/user/account", p)
}

func (c *Client) Withdraw(ctx context.Context, ticker, address string, amount decimal.Decimal) (json.RawMessage, error) {
	const op = "withdraw"

	switch {
	case ticker == "":
		return nil, invalid(op, "ticker", ticker)
	case address == "":
		return nil, invalid(op, "address", address)
	case !amount.IsPositive():
		return nil, invalid(op, "amount", amount)
	}

	p := (&Params{}).
		AddInt("nonce", c.nonce()).
		Add("ticker", ticker).
		Add("address", address).
		AddDecimal("amount", amount)

	return c.private(ctx, op, http.MethodPost, "/user/withdraw", p)
}

func (c *Client) OpenOrders(ctx context.Context) (json.RawMessage, error) {
	p := (&Params{}).
		AddInt("nonce", c.nonce())

	return c.private(ctx, "open orders", http.MethodGet, "/exchange/spot/myOpenOrder", p)
}

// MyTrades returns own trades. Zero limit means DefaultLimit.
func (c *Client) MyTrades(ctx context.Context, market string, limit int) (json.RawMessage, error) {
	return c.history(ctx, "my trades", "/exchange/spot/myTrades", market, limit)
}

// OrderHistory returns own closed orders. Zero limit means DefaultLimit.
func (c *Client) OrderHistory(ctx context.Context, market string, limit int) (json.RawMessage, error) {
	return c.history(ctx, "order history", "/exchange/spot/myOrderHistory", market, limit)
}

func (c *Client) history(ctx context.Context, op, path, market string, limit int) (json.RawMessage, error) {
	limit, err := checkLimit(op, limit)
	if err != nil {
		return nil, err
	}

	p := (&Params{}).
		AddInt("nonce", c.nonce()).
		Add("market", market).
		AddInt("limit", int64(limit))

	return c.private(ctx, op, http.MethodGet, path, p)
}

func (c *Client) PlaceOrder(ctx context.Context, o Order) (json.RawMessage, error) {
	const op = "place order"

	if o.Market == "" {
		return nil, invalid(op, "market", o.Market)
	}

	side := strings.ToUpper(o.Side)

	if !oneOf(side, Sides) {
		return nil, invalid(op, "side", o.Side, Sides...)
	}

	p := (&Params{}).
		AddInt("nonce", c.nonce()).
		Add("market", o.Market).
		Add("side", side).
		AddDecimal("price", o.Price).
		AddDecimal("amount", o.Amount)

	return c.private(ctx, op, http.MethodPost, "/exchange/spot/order", p)
}

// Cancel cancels an order. Valid ids are greater than 1.
func (c *Client) Cancel(ctx context.Context, orderID int64) (json.RawMessage, error) {
	const op = "cancel"

	if orderID <= 1 {
		return nil, invalid(op, "orderID", orderID)
	}

	p := (&Params{}).
		AddInt("orderId", orderID).
		AddInt("nonce", c.nonce())

	return c.private(ctx, op, http.MethodPost, "/exchange/spot/cancel", p)
}

func (c *Client) CancelAll(ctx context.Context, market string) (json.RawMessage, error) {
	const op = "cancel all"

	if market == "" {
		return nil, invalid(op, "market", market)
	}

	p := (&Params{}).
		AddInt("nonce", c.nonce()).
		Add("market", market)

	return c.private(ctx, op, http.MethodPost, "/exchange/spot/cancelAll", p)
}

// SetPayoutCoin selects the coin MineCube rewards are paid in.
func (c *Client) SetPayoutCoin(ctx context.Context, coin string) (json.RawMessage, error) {
	const op = "set payout coin"

	coin = strings.ToUpper(coin)

	if !oneOf(coin, PayoutCoins) {
		return nil, invalid(op, "coin", coin, PayoutCoins...)
	}

	p := (&Params{}).
		Add("target", coin).
		AddInt("nonce", c.nonce())

	return c.private(ctx, op, http.MethodPost, "/minecube/setPayoutCoin", p)
}

// BuyWorkers buys MineCube workers paying with method.
// workers must fit into a float64 mantissa, the server reads it as a js number.
func (c *Client) BuyWorkers(ctx context.Context, method string, workers int64) (json.RawMessage, error) {
	const op = "buy workers"

	method = strings.ToUpper(method)

	if !oneOf(method, PaymentMethods) {
		return nil, invalid(op, "method", method, PaymentMethods...)
	}

	if workers > maxSafeInteger || workers < -maxSafeInteger {
		return nil, invalid(op, "workers", workers)
	}

	p := (&Params{}).
		Add("method", method).
		AddInt("amount", workers).
		AddInt("nonce", c.nonce())

	return c.private(ctx, op, http.MethodPost, "/minecube/buyWorker", p)
}
