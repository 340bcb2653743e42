package ledger

import (
	"sort"
	"time"
)

// StatementOptions tunes statement construction.
type StatementOptions struct {
	// PriorBalance seeds the running balance at the window start.
	// Callers that used to over-fetch history and discard leading rows
	// can pass the carried balance here instead.
	PriorBalance float64
	// AdhocCharges are externally recorded charges merged with the
	// synthesized recurring rent.
	AdhocCharges []Charge
}

// BuildStatement merges the tenant's charges and the supplied payments
// into a chronological running-balance ledger over [start, end].
//
// Same-day ties post the charge before the payment: a rent charge posts
// at the start of the day and a payment received that day reduces the
// balance it just created. Arrears classification depends on this
// ordering.
func BuildStatement(tenant Tenant, start, end time.Time, payments []Payment, opts StatementOptions) Statement {
	charges := BuildCharges(tenant, start, end, opts.AdhocCharges)

	inRange := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if inWindow(p.Date, start, end) {
			inRange = append(inRange, p)
		}
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].Date.Before(inRange[j].Date)
	})

	rows := make([]StatementRow, 0, len(charges)+len(inRange))
	balance := opts.PriorBalance
	var totalCharges, totalPayments float64

	ci, pi := 0, 0
	for ci < len(charges) || pi < len(inRange) {
		// Charges win date ties.
		takeCharge := pi >= len(inRange) ||
			(ci < len(charges) && !charges[ci].Date.After(inRange[pi].Date))
		if takeCharge {
			c := charges[ci]
			ci++
			balance = Round2(balance + c.Amount)
			totalCharges += c.Amount
			rows = append(rows, StatementRow{
				Date:        c.Date,
				Kind:        EntryCharge,
				Description: c.Description,
				Charge:      c.Amount,
				Balance:     balance,
			})
			continue
		}
		p := inRange[pi]
		pi++
		balance = Round2(balance - p.Amount)
		totalPayments += p.Amount
		rows = append(rows, StatementRow{
			Date:        p.Date,
			Kind:        EntryPayment,
			Description: p.Description,
			Payment:     p.Amount,
			Balance:     balance,
			Source:      p.Source,
		})
	}

	final := Round2(opts.PriorBalance)
	if len(rows) > 0 {
		final = rows[len(rows)-1].Balance
	}

	return Statement{
		Tenant: tenant,
		Start:  start,
		End:    end,
		Rows:   rows,
		Totals: StatementTotals{
			Charges:  Round2(totalCharges),
			Payments: Round2(totalPayments),
			Balance:  final,
		},
	}
}

// RowsInWindow returns the statement rows dated inside [start, end].
// Running balances are left untouched; they still reflect the full
// statement window.
func (s Statement) RowsInWindow(start, end time.Time) []StatementRow {
	var out []StatementRow
	for _, r := range s.Rows {
		if inWindow(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out
}

// LastPaymentDate returns the date of the most recent payment row.
func (s Statement) LastPaymentDate() (time.Time, bool) {
	for i := len(s.Rows) - 1; i >= 0; i-- {
		if s.Rows[i].Kind == EntryPayment {
			return s.Rows[i].Date, true
		}
	}
	return time.Time{}, false
}
