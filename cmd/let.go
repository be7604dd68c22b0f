package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ladder"
	"github.com/etnz/ladder/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// letCmd holds the flags for the 'let' subcommand.
type letCmd struct {
	kind         string
	selfManage   bool
	interestOnly bool
	pretty       bool
}

func (*letCmd) Name() string     { return "let" }
func (*letCmd) Synopsis() string { return "monthly profit of a buy-to-let property" }
func (*letCmd) Usage() string {
	return `pld let [-kind flat|house] [-self-manage] [-interest-only=false]

  Estimates the monthly profit of letting a flat or a house bought with a
  buy-to-let mortgage.
`
}

func (c *letCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "flat", "Kind of property (flat, house)")
	f.BoolVar(&c.selfManage, "self-manage", false, "Manage the letting without an agent")
	f.BoolVar(&c.interestOnly, "interest-only", true, "Pay only the interest of the mortgage")
	f.BoolVar(&c.pretty, "pretty", false, "Render the report for the terminal")
}

func (c *letCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer log.Sync()
	return exitStatus(c.execute(cfg.Assumptions(), renderer.Options{Currency: cfg.Currency}, log))
}

func (c *letCmd) execute(a ladder.Assumptions, opts renderer.Options, log *zap.Logger) error {
	kind, err := parseKind(c.kind)
	if err != nil {
		return err
	}
	p, err := a.BuyToLetOf(kind)
	if err != nil {
		return err
	}
	l := a.LettingProfit(p, c.selfManage, c.interestOnly)
	log.Info("letting", zap.Stringer("property", p), zap.Stringer("profit", l.Profit))
	printMarkdown(renderer.LettingMarkdown(p, l, opts), c.pretty)
	return nil
}
