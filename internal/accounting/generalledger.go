package accounting

import (
	"sort"

	"github.com/propfolio/propfolio/internal/ledger"
)

// GeneralLedgerRow is one journal line joined to its account.
type GeneralLedgerRow struct {
	Line        JournalLine `json:"line"`
	AccountCode string      `json:"accountCode"`
	AccountName string      `json:"accountName"`
}

// GeneralLedger is the flat chronological view of the filtered journal.
type GeneralLedger struct {
	Rows        []GeneralLedgerRow `json:"rows"`
	TotalDebit  float64            `json:"totalDebit"`
	TotalCredit float64            `json:"totalCredit"`
}

// BuildGeneralLedger lists all matching lines chronologically with
// their account identity and aggregate debit/credit totals.
func BuildGeneralLedger(accounts []Account, lines []JournalLine) GeneralLedger {
	byID := make(map[int64]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	gl := GeneralLedger{Rows: make([]GeneralLedgerRow, 0, len(lines))}
	for _, l := range lines {
		acc, ok := byID[l.AccountID]
		if !ok {
			continue
		}
		gl.Rows = append(gl.Rows, GeneralLedgerRow{Line: l, AccountCode: acc.Code, AccountName: acc.Name})
		gl.TotalDebit += l.Debit
		gl.TotalCredit += l.Credit
	}

	sort.SliceStable(gl.Rows, func(i, j int) bool {
		if !gl.Rows[i].Line.Date.Equal(gl.Rows[j].Line.Date) {
			return gl.Rows[i].Line.Date.Before(gl.Rows[j].Line.Date)
		}
		return gl.Rows[i].Line.ID < gl.Rows[j].Line.ID
	})

	gl.TotalDebit = ledger.Round2(gl.TotalDebit)
	gl.TotalCredit = ledger.Round2(gl.TotalCredit)
	return gl
}
