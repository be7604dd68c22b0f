package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ladder"
	md "github.com/nao1215/markdown"
)

// CostsMarkdown renders the breakdown of the cash required to buy p.
func CostsMarkdown(a ladder.Assumptions, p ladder.Property, firstTimeBuyer bool, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("Buying a %s at %s", p.Kind(), opts.money(p.Value()))
	if firstTimeBuyer {
		title += " as a first-time buyer"
	}
	doc.H1(title)

	moving := a.Fees.Moving
	if a.ProfessionalMove {
		moving = a.Fees.ProfessionalMoving
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Cost", "Amount"},
		Rows: [][]string{
			{"Mortgage arrangement", opts.money(a.Fees.MortgageArrangement)},
			{"Legal", opts.money(a.Fees.Legal)},
			{"Survey", opts.money(a.Fees.Survey)},
			{"Moving", opts.money(moving)},
			{"Stamp duty", opts.money(ladder.StampDuty(firstTimeBuyer, p.Value()))},
			{"Deposit", opts.money(p.Mortgage().Deposit())},
			{md.Bold("Cash Required"), md.Bold(opts.money(a.CashRequired(p, firstTimeBuyer)))},
		},
	})

	return doc.String()
}
