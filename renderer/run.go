package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ladder"
	md "github.com/nao1215/markdown"
)

// RunMarkdown renders the outcome of a strategy run: a summary, the portfolio
// at the end of the run and the monthly history.
func RunMarkdown(r ladder.Result, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Strategy %s", r.Strategy))

	completion := fmt.Sprintf("%d", r.Months)
	if !opts.Start.IsZero() && r.Months > 0 {
		completion = fmt.Sprintf("%d (%s)", r.Months, opts.Start.Add(r.Months-1))
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Summary", "Value"},
		Rows: [][]string{
			{"Months", completion},
			{"Savings", opts.money(r.Savings)},
			{md.Bold("Net Assets"), md.Bold(opts.money(r.NetAssets))},
		},
	})

	doc.H2("Portfolio")
	portfolio := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Kind", "Value", "Rate", "Principal", "LTV", "Equity"},
		Rows:   [][]string{},
	}
	for i, p := range r.Portfolio {
		portfolio.Rows = append(portfolio.Rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Kind().String(),
			opts.money(p.Value()),
			p.Mortgage().InterestRate().String(),
			opts.money(p.Principal()),
			p.LTV().Round(4).String(),
			opts.money(p.Equity()),
		})
	}
	doc.Table(portfolio)

	if r.History.Len() > 0 {
		doc.H2("History")
		history := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Month", "Savings", "Properties", "Principal", "LTV"},
			Rows:   [][]string{},
		}
		total := r.History.Len()
		for s := range r.History.All() {
			if !opts.sampled(s.Month, total) {
				continue
			}
			principal, ltv := "", ""
			if n := len(s.Properties); n > 0 {
				latest := s.Properties[n-1]
				principal = opts.money(latest.RemainingPrincipal)
				ltv = latest.LTV.String()
			}
			history.Rows = append(history.Rows, []string{
				opts.label(s.Month),
				opts.money(s.Savings),
				fmt.Sprintf("%d", len(s.Properties)),
				principal,
				ltv,
			})
		}
		doc.Table(history)
	}

	return doc.String()
}
