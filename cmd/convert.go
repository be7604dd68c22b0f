package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/ladder"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	kind    string
	deposit string
	months  int
	overpay string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "check a buy-to-let conversion" }
func (*convertCmd) Usage() string {
	return `pld convert [-kind flat|house] [-deposit <ratio>] [-months <n>] [-overpay <amount>]

  Repays a newly bought property for some months, then refinances it into a
  buy-to-let mortgage. The conversion is refused above 75% loan-to-value.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "flat", "Kind of property (flat, house)")
	f.StringVar(&c.deposit, "deposit", "10%", "Deposit, as a share of the value")
	f.IntVar(&c.months, "months", 0, "Months of repayment before the conversion")
	f.StringVar(&c.overpay, "overpay", "0", "Monthly overpayment")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		return exitStatus(err)
	}
	defer log.Sync()
	out, err := c.execute(cfg.Assumptions(), cfg.Currency, log)
	if errors.Is(err, ladder.ErrIneligibleConversion) {
		fmt.Println("Not eligible:", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		return exitStatus(err)
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

func (c *convertCmd) execute(a ladder.Assumptions, currency string, log *zap.Logger) (string, error) {
	kind, err := parseKind(c.kind)
	if err != nil {
		return "", err
	}
	deposit, err := parseRatio("deposit", c.deposit)
	if err != nil {
		return "", err
	}
	overpay, err := parseAmount("overpay", c.overpay)
	if err != nil {
		return "", err
	}
	if c.months < 0 {
		return "", fmt.Errorf("%w: -months must not be negative", ladder.ErrInvalidConfiguration)
	}
	p, err := a.NewPropertyOf(kind, deposit)
	if err != nil {
		return "", err
	}
	p = ladder.MultiStep(p, c.months, ladder.FixedMonthlyPayment(p), overpay)
	log.Debug("converting", zap.Stringer("property", p))

	q, err := p.ConvertToBuyToLet(a.BuyToLetTermYears)
	if err != nil {
		return "", err
	}
	m := q.Mortgage()
	return fmt.Sprintf("Converted to buy-to-let at %s over %d years: %s released as deposit, %s borrowed, %s a month.",
		m.InterestRate(), m.TermYears(), m.Deposit().Format(currency), m.Principal().Format(currency),
		ladder.FixedMonthlyPayment(q).Format(currency)), nil
}
