package accounting

import (
	"sort"

	"github.com/propfolio/propfolio/internal/ledger"
)

// FilterLines applies the shared property/date/account filter. Every
// projection consumes the output of this one function so their row
// universes cannot drift apart.
func FilterLines(lines []JournalLine, f Filter) []JournalLine {
	var out []JournalLine
	for _, l := range lines {
		if f.PropertyID != "" && l.PropertyID != f.PropertyID {
			continue
		}
		if !f.From.IsZero() && l.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && l.Date.After(f.To) {
			continue
		}
		if f.AccountID != 0 && l.AccountID != f.AccountID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ReduceBalances folds filtered lines into per-account debit/credit
// totals and category-signed balances, sorted by account code.
// Accounts with no activity are omitted.
func ReduceBalances(accounts []Account, lines []JournalLine) []AccountBalance {
	byID := make(map[int64]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	type sums struct{ debit, credit float64 }
	totals := make(map[int64]*sums)
	for _, l := range lines {
		s, ok := totals[l.AccountID]
		if !ok {
			s = &sums{}
			totals[l.AccountID] = s
		}
		s.debit += l.Debit
		s.credit += l.Credit
	}

	balances := make([]AccountBalance, 0, len(totals))
	for id, s := range totals {
		acc, ok := byID[id]
		if !ok {
			// Line referencing an unknown account: a data-quality gap,
			// not a fault. Skip it the way unattributable payments are
			// skipped.
			continue
		}
		balances = append(balances, AccountBalance{
			Account: acc,
			Debit:   ledger.Round2(s.debit),
			Credit:  ledger.Round2(s.credit),
			Balance: ledger.Round2(acc.SignedBalance(s.debit, s.credit)),
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Account.Code < balances[j].Account.Code
	})
	return balances
}
