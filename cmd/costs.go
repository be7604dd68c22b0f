package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ladder"
	"github.com/etnz/ladder/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// costsCmd holds the flags for the 'costs' subcommand.
type costsCmd struct {
	kind      string
	deposit   string
	firstTime bool
	savings   string
	monthly   string
	pretty    bool
}

func (*costsCmd) Name() string     { return "costs" }
func (*costsCmd) Synopsis() string { return "cash required to buy a property" }
func (*costsCmd) Usage() string {
	return `pld costs [-kind flat|house] [-deposit <ratio>] [-first-time] [-savings <amount> -monthly <amount>]

  Details the fees, stamp duty and deposit needed to buy a flat or a house.
  With -monthly, also tells how many months of saving it takes from -savings.
`
}

func (c *costsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "flat", "Kind of property (flat, house)")
	f.StringVar(&c.deposit, "deposit", "10%", "Deposit, as a share of the value")
	f.BoolVar(&c.firstTime, "first-time", true, "Buy as a first-time buyer")
	f.StringVar(&c.savings, "savings", "0", "Current savings")
	f.StringVar(&c.monthly, "monthly", "0", "Amount saved every month, 0 to skip the estimate")
	f.BoolVar(&c.pretty, "pretty", false, "Render the report for the terminal")
}

func (c *costsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer log.Sync()
	return exitStatus(c.execute(cfg.Assumptions(), renderer.Options{Currency: cfg.Currency}, log))
}

func (c *costsCmd) execute(a ladder.Assumptions, opts renderer.Options, log *zap.Logger) error {
	kind, err := parseKind(c.kind)
	if err != nil {
		return err
	}
	deposit, err := parseRatio("deposit", c.deposit)
	if err != nil {
		return err
	}
	savings, err := parseAmount("savings", c.savings)
	if err != nil {
		return err
	}
	monthly, err := parseAmount("monthly", c.monthly)
	if err != nil {
		return err
	}
	p, err := a.NewPropertyOf(kind, deposit)
	if err != nil {
		return err
	}
	log.Debug("property", zap.Stringer("property", p))

	md := renderer.CostsMarkdown(a, p, c.firstTime, opts)
	if !monthly.IsZero() {
		months, err := a.Fees.MonthsUntilAffordable(savings, monthly, p, c.firstTime, a.ProfessionalMove)
		if err != nil {
			return err
		}
		md += fmt.Sprintf("\n\nAffordable after %d months of saving.\n", months)
	}
	printMarkdown(md, c.pretty)
	return nil
}
