package accounting

import (
	"github.com/propfolio/propfolio/internal/ledger"
)

// BalanceSheetRow is one account inside a balance sheet section.
type BalanceSheetRow struct {
	AccountCode string  `json:"accountCode"`
	AccountName string  `json:"accountName"`
	Balance     float64 `json:"balance"`
}

// BalanceSheetSection contains the accounts and total for one
// classification.
type BalanceSheetSection struct {
	Label    string            `json:"label"`
	Accounts []BalanceSheetRow `json:"accounts"`
	Total    float64           `json:"total"`
}

// BalanceSheet is the sectioned assets/liabilities/equity view.
type BalanceSheet struct {
	Assets                    BalanceSheetSection `json:"assets"`
	Liabilities               BalanceSheetSection `json:"liabilities"`
	Equity                    BalanceSheetSection `json:"equity"`
	TotalLiabilitiesAndEquity float64             `json:"totalLiabilitiesAndEquity"`
}

// BuildBalanceSheet projects reduced balances into assets, liabilities,
// and equity sections. Income and expense accounts are excluded; they
// belong to the cashflow and trial balance views.
func BuildBalanceSheet(balances []AccountBalance) BalanceSheet {
	assets := BalanceSheetSection{Label: "Assets"}
	liabilities := BalanceSheetSection{Label: "Liabilities"}
	equity := BalanceSheetSection{Label: "Equity"}

	for _, b := range balances {
		row := BalanceSheetRow{AccountCode: b.Account.Code, AccountName: b.Account.Name, Balance: b.Balance}
		switch b.Account.Type {
		case AccountTypeAsset:
			assets.Accounts = append(assets.Accounts, row)
			assets.Total += row.Balance
		case AccountTypeLiability:
			liabilities.Accounts = append(liabilities.Accounts, row)
			liabilities.Total += row.Balance
		case AccountTypeEquity:
			equity.Accounts = append(equity.Accounts, row)
			equity.Total += row.Balance
		}
	}

	assets.Total = ledger.Round2(assets.Total)
	liabilities.Total = ledger.Round2(liabilities.Total)
	equity.Total = ledger.Round2(equity.Total)

	return BalanceSheet{
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalLiabilitiesAndEquity: ledger.Round2(liabilities.Total + equity.Total),
	}
}
