package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ladder"
	md "github.com/nao1215/markdown"
)

// LettingMarkdown renders the monthly account of a let property.
func LettingMarkdown(p ladder.Property, l ladder.Letting, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Letting a %s at %s", p.Kind(), opts.money(p.Value())))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Monthly", "Amount"},
		Rows: [][]string{
			{"Rent", opts.money(l.Revenue)},
			{"Expenses", opts.money(l.Expenses.Neg())},
			{"Management", opts.money(l.Management.Neg())},
			{"Mortgage", opts.money(l.Mortgage.Neg())},
			{md.Bold("Profit"), md.Bold(opts.money(l.Profit))},
		},
	})

	return doc.String()
}
