package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/etnz/ladder"
	"github.com/etnz/ladder/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	income      string
	savings     string
	deposits    string
	overpayStep string
	strategies  string
	json        bool
	pretty      bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find the fastest strategy" }
func (*searchCmd) Usage() string {
	return `pld search [-income <amount>] [-savings <amount>] [-deposits <ratios>] [-overpay-step <ratio>] [-strategies <codes>] [-json|-pretty]

  Runs every combination of deposit, strategy code and overpayment share, and
  reports the one completing its strategy in the fewest months, the highest
  net assets breaking ties.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.income, "income", "1800", "Monthly net income")
	f.StringVar(&c.savings, "savings", "0", "Savings at the start")
	f.StringVar(&c.deposits, "deposits", "5%,10%,15%,20%", "Comma separated deposits to try")
	f.StringVar(&c.overpayStep, "overpay-step", "10%", "Step of the overpayment shares tried, from 0% to 100%")
	f.StringVar(&c.strategies, "strategies", "FF,FH,HH", "Comma separated strategy codes to try")
	f.BoolVar(&c.json, "json", false, "Print every candidate as JSON")
	f.BoolVar(&c.pretty, "pretty", false, "Render the report for the terminal")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer log.Sync()
	return exitStatus(c.execute(cfg.Assumptions(), renderer.Options{Currency: cfg.Currency}, log))
}

func (c *searchCmd) execute(a ladder.Assumptions, opts renderer.Options, log *zap.Logger) error {
	g, err := c.grid()
	if err != nil {
		return err
	}
	log.Info("searching",
		zap.Int("deposits", len(g.Deposits)),
		zap.Int("overpayments", len(g.Overpayments)),
		zap.Strings("strategies", g.Strategies))
	s, err := a.Search(g)
	if err != nil {
		return err
	}
	for _, cand := range s.Candidates {
		log.Debug("candidate",
			zap.String("strategy", cand.Strategy),
			zap.Stringer("deposit", cand.Deposit),
			zap.Stringer("overpayment", cand.Overpayment),
			zap.Int("months", cand.Months),
			zap.Error(cand.Err))
	}
	if s.Found {
		log.Info("best strategy", zap.String("strategy", s.Best.Strategy), zap.Int("months", s.Best.Months))
	} else {
		log.Warn("no strategy completes")
	}
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	printMarkdown(renderer.SearchMarkdown(s, opts), c.pretty)
	return nil
}

func (c *searchCmd) grid() (ladder.Grid, error) {
	var g ladder.Grid
	var err error
	if g.Income, err = parseAmount("income", c.income); err != nil {
		return g, err
	}
	if g.Savings, err = parseAmount("savings", c.savings); err != nil {
		return g, err
	}
	if g.Deposits, err = parseRatios("deposits", c.deposits); err != nil {
		return g, err
	}
	step, err := parseRatio("overpay-step", c.overpayStep)
	if err != nil {
		return g, err
	}
	if g.Overpayments, err = ladder.OverpaymentRange(step); err != nil {
		return g, err
	}
	g.Strategies = parseList(c.strategies)
	return g, nil
}
