package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ladder"
	md "github.com/nao1215/markdown"
)

// SearchMarkdown renders the best strategy of a search followed by every
// candidate tried, failed ones included.
func SearchMarkdown(s ladder.SearchResult, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Strategy Search")
	if s.Found {
		b := s.Best
		doc.PlainText(fmt.Sprintf("Best: %s with a %s deposit and %s of the budget overpaid, done in %d months with %s of net assets.",
			md.Bold(b.Strategy), b.Deposit, b.Overpayment, b.Months, opts.money(b.NetAssets)))
	} else {
		doc.PlainText("No strategy completes with this income.")
	}

	doc.H2("Candidates")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Strategy", "Deposit", "Overpayment", "Months", "Net Assets"},
		Rows:   [][]string{},
	}
	for _, c := range s.Candidates {
		months, net := "-", "-"
		if c.Err == nil {
			months, net = fmt.Sprintf("%d", c.Months), opts.money(c.NetAssets)
		}
		table.Rows = append(table.Rows, []string{
			c.Strategy,
			c.Deposit.String(),
			c.Overpayment.String(),
			months,
			net,
		})
	}
	doc.Table(table)

	return doc.String()
}
