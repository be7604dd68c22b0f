package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ladder"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// ltvCmd holds the flags for the 'ltv' subcommand.
type ltvCmd struct {
	kind          string
	deposit       string
	target        string
	overpay       string
	maxIterations int
}

func (*ltvCmd) Name() string     { return "ltv" }
func (*ltvCmd) Synopsis() string { return "months to reach a loan-to-value" }
func (*ltvCmd) Usage() string {
	return `pld ltv [-kind flat|house] [-deposit <ratio>] [-target <ratio>] [-overpay <amount>] [-max-iterations <n>]

  Repays a newly bought property every month, with an optional fixed
  overpayment, until its loan-to-value is at or below the target.
`
}

func (c *ltvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "flat", "Kind of property (flat, house)")
	f.StringVar(&c.deposit, "deposit", "10%", "Deposit, as a share of the value")
	f.StringVar(&c.target, "target", "75%", "Loan-to-value to reach")
	f.StringVar(&c.overpay, "overpay", "0", "Monthly overpayment")
	f.IntVar(&c.maxIterations, "max-iterations", ladder.DefaultMaxIterations, "Give up after this many months")
}

func (c *ltvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer log.Sync()
	out, err := c.execute(cfg.Assumptions(), cfg.Currency, log)
	if err != nil {
		return exitStatus(err)
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

func (c *ltvCmd) execute(a ladder.Assumptions, currency string, log *zap.Logger) (string, error) {
	kind, err := parseKind(c.kind)
	if err != nil {
		return "", err
	}
	deposit, err := parseRatio("deposit", c.deposit)
	if err != nil {
		return "", err
	}
	target, err := parseRatio("target", c.target)
	if err != nil {
		return "", err
	}
	overpay, err := parseAmount("overpay", c.overpay)
	if err != nil {
		return "", err
	}
	p, err := a.NewPropertyOf(kind, deposit)
	if err != nil {
		return "", err
	}
	payment := ladder.FixedMonthlyPayment(p)
	log.Debug("repaying", zap.Stringer("property", p), zap.Stringer("payment", payment), zap.Stringer("overpay", overpay))

	months, q, err := ladder.MonthsToReachLTV(p, target, payment, overpay, c.maxIterations)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s LTV reached after %d months, paying %s a month: %s left to repay.",
		target, months, payment.Add(overpay).Format(currency), q.Principal().Format(currency)), nil
}
