package accounting

import (
	"github.com/propfolio/propfolio/internal/ledger"
)

// TrialBalanceRow is one account's raw debit/credit totals.
type TrialBalanceRow struct {
	AccountCode string  `json:"accountCode"`
	AccountName string  `json:"accountName"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
}

// TrialBalance is the raw per-account debit/credit view.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  float64           `json:"totalDebit"`
	TotalCredit float64           `json:"totalCredit"`
}

// BuildTrialBalance projects reduced balances into the trial balance.
func BuildTrialBalance(balances []AccountBalance) TrialBalance {
	tb := TrialBalance{Rows: make([]TrialBalanceRow, 0, len(balances))}
	for _, b := range balances {
		tb.Rows = append(tb.Rows, TrialBalanceRow{
			AccountCode: b.Account.Code,
			AccountName: b.Account.Name,
			Debit:       b.Debit,
			Credit:      b.Credit,
		})
		tb.TotalDebit += b.Debit
		tb.TotalCredit += b.Credit
	}
	tb.TotalDebit = ledger.Round2(tb.TotalDebit)
	tb.TotalCredit = ledger.Round2(tb.TotalCredit)
	return tb
}
