package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ladder"
	"github.com/etnz/ladder/date"
	"github.com/etnz/ladder/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	income   string
	savings  string
	overpay  string
	strategy string
	deposit  string
	start    string
	every    int
	json     bool
	query    string
	pretty   bool
	history  string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "simulate a strategy month by month" }
func (*runCmd) Usage() string {
	return `pld run [-strategy <code>] [-income <amount>] [-savings <amount>] [-deposit <ratio>] [-overpay <ratio>] [-json|-q <jsonpath>|-pretty]

  Buys the properties of the strategy code one after the other, F for a flat
  and H for a house, and reports how many months it takes and the net assets
  at the end.

  Each month the income left after expenses is split between saving for the
  next property and overpaying the current mortgage: -overpay is the share
  overpaid once the current property is below 75% loan-to-value and the
  savings are short.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.income, "income", "1800", "Monthly net income")
	f.StringVar(&c.savings, "savings", "0", "Savings at the start")
	f.StringVar(&c.overpay, "overpay", "75%", "Share of the monthly budget used to overpay the mortgage")
	f.StringVar(&c.strategy, "strategy", "FH", "Strategy code, the kinds of properties to buy in order")
	f.StringVar(&c.deposit, "deposit", "10%", "Deposit of every purchase, as a share of the value")
	f.StringVar(&c.start, "start", date.Current().String(), "Calendar month of the first simulated month")
	f.IntVar(&c.every, "every", 1, "Show one month every n in the history")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
	f.StringVar(&c.query, "q", "", "Print the value at this JSONPath in the JSON result, like $.months")
	f.BoolVar(&c.pretty, "pretty", false, "Render the report for the terminal")
	f.StringVar(&c.history, "history", "", "Write the monthly history to this file, one JSON object per line")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer log.Sync()
	return exitStatus(c.execute(cfg.Assumptions(), renderer.Options{Currency: cfg.Currency, Every: c.every}, log))
}

func (c *runCmd) execute(a ladder.Assumptions, opts renderer.Options, log *zap.Logger) error {
	income, err := parseAmount("income", c.income)
	if err != nil {
		return err
	}
	savings, err := parseAmount("savings", c.savings)
	if err != nil {
		return err
	}
	overpay, err := parseRatio("overpay", c.overpay)
	if err != nil {
		return err
	}
	deposit, err := parseRatio("deposit", c.deposit)
	if err != nil {
		return err
	}
	if c.start != "" {
		if opts.Start, err = date.Parse(c.start); err != nil {
			return fmt.Errorf("%w: -start: %w", ladder.ErrInvalidConfiguration, err)
		}
	}

	log.Info("running strategy",
		zap.String("strategy", c.strategy),
		zap.Stringer("income", income),
		zap.Stringer("savings", savings),
		zap.Stringer("overpay", overpay),
		zap.Stringer("deposit", deposit))
	r, err := a.RunStrategy(income, savings, overpay, c.strategy, deposit)
	if err != nil {
		return err
	}
	log.Info("strategy completed",
		zap.Int("months", r.Months),
		zap.Stringer("net_assets", r.NetAssets))

	if c.history != "" {
		if err := writeHistory(c.history, &r.History); err != nil {
			return err
		}
		log.Debug("history written", zap.String("file", c.history), zap.Int("months", r.History.Len()))
	}

	switch {
	case c.query != "":
		out, err := query(r, c.query)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case c.json:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		printMarkdown(renderer.RunMarkdown(r, opts), c.pretty)
	}
	return nil
}

func writeHistory(path string, h *ladder.History) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create history file: %w", err)
	}
	if err := ladder.EncodeHistory(f, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
