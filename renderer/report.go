package renderer

import (
	"bytes"
	"fmt"

	"github.com/avrile/payments"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a processed run as a markdown report: a run summary,
// one table row per client account, and the warnings the run produced.
func ReportMarkdown(r *Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Accounts after %s", r.Source))
	doc.PlainText(fmt.Sprintf("%d records applied, %d ignored.", r.Applied, r.Ignored))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Client", "Available", "Held", "Total", "Status"},
	}
	for _, s := range r.Accounts {
		status := "open"
		if s.Locked {
			status = "frozen"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", s.Client),
			r.amount(s.Available),
			r.amount(s.Held),
			r.amount(s.Total),
			status,
		})
	}
	doc.Table(table)

	if len(r.Warnings) > 0 {
		doc.H2(fmt.Sprintf("Ignored Records (%d)", len(r.Warnings)))
		doc.OrderedList(r.Warnings...)
	}

	return doc.String()
}

// amount renders a value in the report's display currency when one is set,
// in the plain four-digit form otherwise.
func (r *Report) amount(a payments.Amount) string {
	if r.Currency == "" {
		return a.StringFixed()
	}
	return a.Format(r.Currency)
}
