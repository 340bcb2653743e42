// Package accounting reduces journal-entry lines by chart-of-accounts
// category into the trial balance, balance sheet, cashflow, and general
// ledger views. All four projections share one filter and reduction
// step so they stay consistent for the same filter set.
package accounting

import (
	"time"

	"github.com/google/uuid"
)

// AccountType enumerates CoA categories.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// CashflowSection classifies an account's cash activity.
type CashflowSection string

const (
	SectionOperating CashflowSection = "OPERATING"
	SectionInvesting CashflowSection = "INVESTING"
	SectionFinancing CashflowSection = "FINANCING"
)

// Account models a chart of accounts node.
type Account struct {
	ID       int64
	Code     string
	Name     string
	Type     AccountType
	IsCash   bool
	Cashflow CashflowSection
}

// JournalLine stores one debit or credit against an account.
type JournalLine struct {
	ID         int64
	AccountID  int64
	Date       time.Time
	PropertyID string
	Debit      float64
	Credit     float64
	Memo       string
	SourceID   uuid.UUID
}

// Filter narrows the journal universe shared by every projection.
type Filter struct {
	PropertyID string
	From       time.Time
	To         time.Time
	AccountID  int64
}

// AccountBalance is one reduced account with category-signed balance.
type AccountBalance struct {
	Account Account `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
	Balance float64 `json:"balance"`
}

// SignedBalance applies the category sign rule: asset and expense
// accounts grow with debits, liability, equity, and income accounts
// grow with credits.
func (a Account) SignedBalance(debit, credit float64) float64 {
	switch a.Type {
	case AccountTypeAsset, AccountTypeExpense:
		return debit - credit
	default:
		return credit - debit
	}
}
