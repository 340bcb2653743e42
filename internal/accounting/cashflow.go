package accounting

import (
	"github.com/propfolio/propfolio/internal/ledger"
)

// CashflowRow is the net balance change of one cashflow section.
type CashflowRow struct {
	Section CashflowSection `json:"section"`
	Net     float64         `json:"net"`
}

// Cashflow is the by-activity view of the filtered journal.
type Cashflow struct {
	Operating  CashflowRow `json:"operating"`
	Investing  CashflowRow `json:"investing"`
	Financing  CashflowRow `json:"financing"`
	NetChange  float64     `json:"netChange"`
	EndingCash float64     `json:"endingCash"`
}

// BuildCashflow projects reduced balances into net balance-change per
// activity section. Ending cash is summed separately over accounts
// flagged as cash, always on the debit-minus-credit convention.
func BuildCashflow(balances []AccountBalance) Cashflow {
	cf := Cashflow{
		Operating: CashflowRow{Section: SectionOperating},
		Investing: CashflowRow{Section: SectionInvesting},
		Financing: CashflowRow{Section: SectionFinancing},
	}

	for _, b := range balances {
		if b.Account.IsCash {
			cf.EndingCash += b.Debit - b.Credit
		}
		switch b.Account.Cashflow {
		case SectionOperating:
			cf.Operating.Net += b.Balance
		case SectionInvesting:
			cf.Investing.Net += b.Balance
		case SectionFinancing:
			cf.Financing.Net += b.Balance
		}
	}

	cf.Operating.Net = ledger.Round2(cf.Operating.Net)
	cf.Investing.Net = ledger.Round2(cf.Investing.Net)
	cf.Financing.Net = ledger.Round2(cf.Financing.Net)
	cf.NetChange = ledger.Round2(cf.Operating.Net + cf.Investing.Net + cf.Financing.Net)
	cf.EndingCash = ledger.Round2(cf.EndingCash)
	return cf
}
