package main

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"strconv"

	"github.com/nikandfor/cli"
	"github.com/nikandfor/errors"
	"github.com/nikandfor/tlog"
	"github.com/nikandfor/tlog/ext/tlflag"
	"github.com/shopspring/decimal"

	"github.com/nikandfor/stakecube"
)

func main() {
	cli.App = cli.Command{
		Name:   "stakecube cli",
		Before: before,
		Flags: []*cli.Flag{
			cli.NewFlag("key", "", "api key"),
			cli.NewFlag("secret", "", "api key secret"),
			cli.NewFlag("api", stakecube.BaseURL, "api base url"),

			cli.NewFlag("log", "stderr+dm", "log destination"),
			cli.NewFlag("v", "", "verbosity topics"),
			cli.NewFlag("debug", "", "debug addr to listen to", cli.Hidden),

			cli.FlagfileFlag,
			cli.HelpFlag,
		},
		Commands: []*cli.Command{{
			Name:   "arbitrage",
			Action: arbitrage,
			Args:   cli.Args{},
		}, {
			Name:   "markets",
			Action: markets,
			Flags: []*cli.Flag{
				cli.NewFlag("base", "SCC", "base coin"),
				cli.NewFlag("orderby", "", "volume|change"),
			},
		}, {
			Name:   "ohlc,candles",
			Action: ohlc,
			Flags: []*cli.Flag{
				marketFlag(),
				cli.NewFlag("interval", "1h", "1m|5m|15m|30m|1h|4h|1d|1w|1mo"),
			},
		}, {
			Name:   "trades",
			Action: trades,
			Flags:  []*cli.Flag{marketFlag(), limitFlag()},
		}, {
			Name:   "orderbook",
			Action: orderbook,
			Flags: []*cli.Flag{
				marketFlag(),
				cli.NewFlag("side", "", "buy|sell"),
			},
		}, {
			Name:   "ratelimits,limits",
			Action: ratelimits,
		}, {
			Name:   "minecube",
			Action: minecubeInfo,
			Commands: []*cli.Command{{
				Name:   "info",
				Action: minecubeInfo,
			}, {
				Name:   "miners",
				Action: minecubeMiners,
				Flags: []*cli.Flag{
					cli.NewFlag("coin", "", "BTC|DASH|ETH|LTC, empty for all"),
				},
			}, {
				Name:   "payout",
				Action: minecubePayout,
				Args:   cli.Args{},
			}, {
				Name:   "buy",
				Action: minecubeBuy,
				Flags: []*cli.Flag{
					cli.NewFlag("method", "SCC", "SCC|CREDITS"),
					cli.NewFlag("workers", "1", "workers to buy"),
				},
			}},
		}, {
			Name:   "account,balance",
			Action: account,
		}, {
			Name:   "withdraw",
			Action: withdraw,
			Flags: []*cli.Flag{
				cli.NewFlag("ticker", "SCC", "coin"),
				cli.NewFlag("address", "", "destination address"),
				cli.NewFlag("amount", "", ""),
			},
		}, {
			Name:   "order",
			Action: openOrders,
			Commands: []*cli.Command{{
				Name:   "list,open",
				Action: openOrders,
			}, {
				Name:   "history",
				Action: orderHistory,
				Flags:  []*cli.Flag{marketFlag(), limitFlag()},
			}, {
				Name:   "trades",
				Action: myTrades,
				Flags:  []*cli.Flag{marketFlag(), limitFlag()},
			}, {
				Name:   "place,new,add",
				Action: orderPlace,
				Flags: []*cli.Flag{
					marketFlag(),
					cli.NewFlag("side", "", "buy|sell"),
					cli.NewFlag("price", "", ""),
					cli.NewFlag("amount", "", ""),
				},
			}, {
				Name:   "cancel",
				Action: orderCancel,
				Args:   cli.Args{},
			}, {
				Name:   "cancelall,cancel-all",
				Action: orderCancelAll,
				Flags:  []*cli.Flag{marketFlag()},
			}},
		}},
	}

	cli.RunAndExit(os.Args)
}

func before(c *cli.Command) error {
	w, err := tlflag.OpenWriter(c.String("log"))
	if err != nil {
		return errors.Wrap(err, "parse log flag")
	}

	tlog.DefaultLogger = tlog.New(w)

	tlog.SetFilter(c.String("v"))

	ls := tlog.FillLabelsWithDefaults("service=stakecube", "_hostname", "_runid", "_execmd5")

	tlog.SetLabels(ls)

	if a := c.String("debug"); a != "" {
		runtime.SetBlockProfileRate(1)
		runtime.SetMutexProfileFraction(1)

		go func() {
			err := http.ListenAndServe(a, nil)
			tlog.Printw("debug server", "err", err)
			os.Exit(1)
		}()

		tlog.Printf("listen debug server on %v", a)
	}

	return nil
}

func marketFlag() *cli.Flag { return cli.NewFlag("market", "SCC_BTC", "market") }

func limitFlag() *cli.Flag { return cli.NewFlag("limit", "100", "max records") }

func client(c *cli.Command) *stakecube.Client {
	cl := stakecube.New(stakecube.NewSession(c.String("key"), []byte(c.String("secret"))))

	cl.BaseURL = c.String("api")

	return cl
}

func arbitrage(c *cli.Command) (err error) {
	if c.Args.Len() == 0 {
		return errors.New("ticker expected")
	}

	for _, t := range c.Args {
		res, err := client(c).ArbitrageInfo(context.Background(), t)
		if err != nil {
			return errors.Wrap(err, "arbitrage info")
		}

		printRaw(res)
	}

	return nil
}

func markets(c *cli.Command) (err error) {
	return output(client(c).Markets(context.Background(), c.String("base"), c.String("orderby")))
}

func ohlc(c *cli.Command) (err error) {
	return output(client(c).OHLC(context.Background(), c.String("market"), c.String("interval")))
}

func trades(c *cli.Command) (err error) {
	limit, err := strconv.Atoi(c.String("limit"))
	if err != nil {
		return errors.Wrap(err, "limit")
	}

	return output(client(c).Trades(context.Background(), c.String("market"), limit))
}

func orderbook(c *cli.Command) (err error) {
	return output(client(c).Orderbook(context.Background(), c.String("market"), c.String("side")))
}

func ratelimits(c *cli.Command) (err error) {
	return output(client(c).RateLimits(context.Background()))
}

func minecubeInfo(c *cli.Command) (err error) {
	return output(client(c).MineCubeInfo(context.Background()))
}

func minecubeMiners(c *cli.Command) (err error) {
	return output(client(c).MineCubeMiners(context.Background(), c.String("coin")))
}

func minecubePayout(c *cli.Command) (err error) {
	if c.Args.Len() != 1 {
		return errors.New("coin expected")
	}

	return output(client(c).SetPayoutCoin(context.Background(), c.Args[0]))
}

func minecubeBuy(c *cli.Command) (err error) {
	workers, err := strconv.ParseInt(c.String("workers"), 10, 64)
	if err != nil {
		return errors.Wrap(err, "workers")
	}

	return output(client(c).BuyWorkers(context.Background(), c.String("method"), workers))
}

func account(c *cli.Command) (err error) {
	return output(client(c).Account(context.Background()))
}

func withdraw(c *cli.Command) (err error) {
	amount, err := decimal.NewFromString(c.String("amount"))
	if err != nil {
		return errors.Wrap(err, "amount")
	}

	return output(client(c).Withdraw(context.Background(), c.String("ticker"), c.String("address"), amount))
}

func openOrders(c *cli.Command) (err error) {
	return output(client(c).OpenOrders(context.Background()))
}

func orderHistory(c *cli.Command) (err error) {
	limit, err := strconv.Atoi(c.String("limit"))
	if err != nil {
		return errors.Wrap(err, "limit")
	}

	return output(client(c).OrderHistory(context.Background(), c.String("market"), limit))
}

func myTrades(c *cli.Command) (err error) {
	limit, err := strconv.Atoi(c.String("limit"))
	if err != nil {
		return errors.Wrap(err, "limit")
	}

	return output(client(c).MyTrades(context.Background(), c.String("market"), limit))
}

func orderPlace(c *cli.Command) (err error) {
	o := stakecube.Order{
		Market: c.String("market"),
		Side:   c.String("side"),
	}

	err = o.Price.UnmarshalText([]byte(c.String("price")))
	if err != nil {
		return errors.Wrap(err, "price")
	}

	err = o.Amount.UnmarshalText([]byte(c.String("amount")))
	if err != nil {
		return errors.Wrap(err, "amount")
	}

	res, err := client(c).PlaceOrder(context.Background(), o)
	if err != nil {
		return errors.Wrap(err, "place order")
	}

	tlog.Printw("place order", "market", o.Market, "side", o.Side, "price", o.Price, "amount", o.Amount)

	printRaw(res)

	return nil
}

func orderCancel(c *cli.Command) (err error) {
	if c.Args.Len() == 0 {
		return errors.New("args expected")
	}

	cl := client(c)

	for _, a := range c.Args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return errors.Wrap(err, "order id")
		}

		res, err := cl.Cancel(context.Background(), id)
		if err != nil {
			return errors.Wrap(err, "cancel")
		}

		tlog.Printw("cancel order", "id", id)

		printRaw(res)
	}

	return nil
}

func orderCancelAll(c *cli.Command) (err error) {
	return output(client(c).CancelAll(context.Background(), c.String("market")))
}

func output(res json.RawMessage, err error) error {
	if err != nil {
		return err
	}

	printRaw(res)

	return nil
}

func printRaw(res json.RawMessage) {
	_, err := os.Stdout.Write(append(res, '\n'))
	if err != nil {
		tlog.Printw("write output", "err", err)
	}
}
