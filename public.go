package stakecube

import (
	"context"
	"encoding/json"
	"strings"
)

const DefaultLimit = 100

var (
	OrderByOptions  = []string{"volume", "change"}
	IntervalOptions = []string{"1m", "5m", "15m", "30m", "1h", "4h", "1d", "1w", "1mo"}
	MinerCoins      = []string{"BTC", "DASH", "ETH", "LTC"}
	Sides           = []string{Buy, Sell}
)

const (
	Buy  = "BUY"
	Sell = "SELL"
)

func (c *Client) ArbitrageInfo(ctx context.Context, ticker string) (json.RawMessage, error) {
	p := (&Params{}).
		Add("ticker", ticker)

	return c.public(ctx, "arbitrage info", "/exchange/spot/arbitrageInfo", p)
}

// Markets lists markets of the base coin.
// orderBy is "volume", "change" or empty, case insensitive.
func (c *Client) Markets(ctx context.Context, base, orderBy string) (json.RawMessage, error) {
	const op = "markets"

	if orderBy != "" {
		orderBy = strings.ToLower(orderBy)

		if !oneOf(orderBy, OrderByOptions) {
			return nil, invalid(op, "orderBy", orderBy, OrderByOptions...)
		}
	}

	p := (&Params{}).
		Add("base", base).
		Add("orderBy", orderBy)

	return c.public(ctx, op, "/exchange/spot/markets", p)
}

// OHLC returns candles. Interval is one of IntervalOptions, case insensitive.
func (c *Client) OHLC(ctx context.Context, market, interval string) (json.RawMessage, error) {
	const op = "ohlc data"

	if market == "" {
		return nil, invalid(op, "market", market)
	}

	interval = strings.ToLower(interval)

	if !oneOf(interval, IntervalOptions) {
		return nil, invalid(op, "interval", interval, IntervalOptions...)
	}

	p := (&Params{}).
		Add("market", market).
		Add("interval", interval)

	return c.public(ctx, op, "/exchange/spot/ohlcData", p)
}

func (c *Client) MineCubeInfo(ctx context.Context) (json.RawMessage, error) {
	return c.public(ctx, "minecube info", "/minecube/info", &Params{})
}

// MineCubeMiners lists miners of the coin.
// Coin is checked case insensitive but sent as given.
// Unknown or empty coin lists all miners.
func (c *Client) MineCubeMiners(ctx context.Context, coin string) (json.RawMessage, error) {
	if !oneOf(strings.ToUpper(coin), MinerCoins) {
		coin = ""
	}

	p := (&Params{}).
		Add("coin", coin)

	return c.public(ctx, "minecube miners", "/minecube/miner", p)
}

func (c *Client) RateLimits(ctx context.Context) (json.RawMessage, error) {
	return c.public(ctx, "rate limits", "/system/rateLimits", &Params{})
}

// Trades returns recent market trades. Zero limit means DefaultLimit.
func (c *Client) Trades(ctx context.Context, market string, limit int) (json.RawMessage, error) {
	const op = "trades"

	if market == "" {
		return nil, invalid(op, "market", market)
	}

	limit, err := checkLimit(op, limit)
	if err != nil {
		return nil, err
	}

	p := (&Params{}).
		Add("market", market).
		AddInt("limit", int64(limit))

	return c.public(ctx, op, "/exchange/spot/trades", p)
}

// Orderbook returns market orderbook. Side is Buy, Sell or empty for both.
func (c *Client) Orderbook(ctx context.Context, market, side string) (json.RawMessage, error) {
	const op = "orderbook"

	if side != "" {
		side = strings.ToUpper(side)

		if !oneOf(side, Sides) {
			return nil, invalid(op, "side", side, Sides...)
		}
	}

	p := (&Params{}).
		Add("market", market).
		Add("side", side)

	return c.public(ctx, op, "/exchange/spot/orderbook", p)
}

func checkLimit(op string, limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultLimit, nil
	case limit < 0:
		return 0, invalid(op, "limit", limit)
	default:
		return limit, nil
	}
}

func oneOf(v string, opts []string) bool {
	for _, o := range opts {
		if v == o {
			return true
		}
	}

	return false
}
