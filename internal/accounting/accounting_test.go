package accounting

import (
	"testing"
	"time"

	_ "github.com/propfolio/propfolio/testing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureAccounts() []Account {
	return []Account{
		{ID: 1, Code: "1000", Name: "Operating Bank", Type: AccountTypeAsset, IsCash: true, Cashflow: SectionOperating},
		{ID: 2, Code: "1100", Name: "Tenant Receivables", Type: AccountTypeAsset, Cashflow: SectionOperating},
		{ID: 3, Code: "2000", Name: "Deposits Held", Type: AccountTypeLiability, Cashflow: SectionFinancing},
		{ID: 4, Code: "3000", Name: "Owner Equity", Type: AccountTypeEquity, Cashflow: SectionFinancing},
		{ID: 5, Code: "4000", Name: "Rental Income", Type: AccountTypeIncome, Cashflow: SectionOperating},
		{ID: 6, Code: "5000", Name: "Maintenance Expense", Type: AccountTypeExpense, Cashflow: SectionOperating},
	}
}

// A balanced journal: opening equity funding the bank account, one
// rent cycle through receivables, and a maintenance spend.
func fixtureLines() []JournalLine {
	return []JournalLine{
		{ID: 1, AccountID: 1, Date: date(2024, time.January, 1), PropertyID: "p-1", Debit: 10000, Memo: "opening funding"},
		{ID: 2, AccountID: 4, Date: date(2024, time.January, 1), PropertyID: "p-1", Credit: 10000, Memo: "opening funding"},
		{ID: 3, AccountID: 2, Date: date(2024, time.February, 1), PropertyID: "p-1", Debit: 1200, Memo: "rent charge feb"},
		{ID: 4, AccountID: 5, Date: date(2024, time.February, 1), PropertyID: "p-1", Credit: 1200, Memo: "rent charge feb"},
		{ID: 5, AccountID: 1, Date: date(2024, time.February, 5), PropertyID: "p-1", Debit: 1200, Memo: "rent received"},
		{ID: 6, AccountID: 2, Date: date(2024, time.February, 5), PropertyID: "p-1", Credit: 1200, Memo: "rent received"},
		{ID: 7, AccountID: 6, Date: date(2024, time.March, 10), PropertyID: "p-2", Debit: 350.50, Memo: "boiler repair"},
		{ID: 8, AccountID: 1, Date: date(2024, time.March, 10), PropertyID: "p-2", Credit: 350.50, Memo: "boiler repair"},
		{ID: 9, AccountID: 1, Date: date(2024, time.April, 2), PropertyID: "p-2", Debit: 500, Memo: "deposit received"},
		{ID: 10, AccountID: 3, Date: date(2024, time.April, 2), PropertyID: "p-2", Credit: 500, Memo: "deposit received"},
	}
}

func TestTrialBalanceDebitsEqualCredits(t *testing.T) {
	balances := ReduceBalances(fixtureAccounts(), fixtureLines())
	tb := BuildTrialBalance(balances)

	if tb.TotalDebit != tb.TotalCredit {
		t.Fatalf("trial balance out of balance: debit %.2f credit %.2f", tb.TotalDebit, tb.TotalCredit)
	}
	if tb.TotalDebit != 13250.50 {
		t.Fatalf("total debit = %.2f, want 13250.50", tb.TotalDebit)
	}
	if len(tb.Rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(tb.Rows))
	}
	if tb.Rows[0].AccountCode != "1000" || tb.Rows[len(tb.Rows)-1].AccountCode != "5000" {
		t.Fatalf("rows not sorted by account code: first %s last %s", tb.Rows[0].AccountCode, tb.Rows[len(tb.Rows)-1].AccountCode)
	}
}

func TestReduceBalancesSignRule(t *testing.T) {
	balances := ReduceBalances(fixtureAccounts(), fixtureLines())
	byCode := make(map[string]AccountBalance)
	for _, b := range balances {
		byCode[b.Account.Code] = b
	}

	// Asset: debit minus credit.
	if got := byCode["1000"].Balance; got != 11349.50 {
		t.Fatalf("bank balance = %.2f, want 11349.50", got)
	}
	// Receivables washed out by the rent receipt.
	if got := byCode["1100"].Balance; got != 0 {
		t.Fatalf("receivables balance = %.2f, want 0", got)
	}
	// Income: credit minus debit.
	if got := byCode["4000"].Balance; got != 1200 {
		t.Fatalf("income balance = %.2f, want 1200", got)
	}
	// Expense: debit minus credit.
	if got := byCode["5000"].Balance; got != 350.50 {
		t.Fatalf("expense balance = %.2f, want 350.50", got)
	}
	// Liability: credit minus debit.
	if got := byCode["2000"].Balance; got != 500 {
		t.Fatalf("deposit liability balance = %.2f, want 500", got)
	}
}

func TestReduceBalancesSkipsUnknownAccount(t *testing.T) {
	lines := append(fixtureLines(), JournalLine{ID: 99, AccountID: 777, Date: date(2024, time.May, 1), Debit: 42})
	balances := ReduceBalances(fixtureAccounts(), lines)
	for _, b := range balances {
		if b.Account.ID == 777 {
			t.Fatalf("unknown account 777 should be skipped")
		}
	}
	if len(balances) != 6 {
		t.Fatalf("got %d balances, want 6", len(balances))
	}
}

func TestBalanceSheetSectionsAndCrossCheck(t *testing.T) {
	balances := ReduceBalances(fixtureAccounts(), fixtureLines())
	bs := BuildBalanceSheet(balances)
	tb := BuildTrialBalance(balances)

	if len(bs.Assets.Accounts) != 2 {
		t.Fatalf("got %d asset rows, want 2", len(bs.Assets.Accounts))
	}
	if len(bs.Liabilities.Accounts) != 1 || len(bs.Equity.Accounts) != 1 {
		t.Fatalf("section sizes: liabilities %d equity %d", len(bs.Liabilities.Accounts), len(bs.Equity.Accounts))
	}
	for _, row := range append(bs.Assets.Accounts, append(bs.Liabilities.Accounts, bs.Equity.Accounts...)...) {
		if row.AccountCode == "4000" || row.AccountCode == "5000" {
			t.Fatalf("income/expense account %s leaked into balance sheet", row.AccountCode)
		}
	}

	// Assets exceed liabilities plus equity by exactly the retained
	// result (income minus expense) that the balance sheet excludes.
	retained := 1200 - 350.50
	if diff := bs.Assets.Total - bs.TotalLiabilitiesAndEquity; diff != retained {
		t.Fatalf("assets - (liabilities+equity) = %.2f, want %.2f", diff, retained)
	}
	if tb.TotalDebit != tb.TotalCredit {
		t.Fatalf("trial balance disagrees with itself under the same filter")
	}
}

func TestCashflowSectionsAndEndingCash(t *testing.T) {
	balances := ReduceBalances(fixtureAccounts(), fixtureLines())
	cf := BuildCashflow(balances)

	// Operating pools the bank, receivables, income, and expense signed
	// balances: 11349.50 + 0 + 1200 + 350.50.
	if cf.Operating.Net != 12900 {
		t.Fatalf("operating net = %.2f, want 12900", cf.Operating.Net)
	}
	if cf.Investing.Net != 0 {
		t.Fatalf("investing net = %.2f, want 0", cf.Investing.Net)
	}
	// Financing pools the deposit liability and equity credit balances.
	if cf.Financing.Net != 10500 {
		t.Fatalf("financing net = %.2f, want 10500", cf.Financing.Net)
	}
	if cf.NetChange != 23400 {
		t.Fatalf("net change = %.2f, want 23400", cf.NetChange)
	}
	// Ending cash covers only accounts flagged as cash, always on the
	// debit-minus-credit convention.
	if cf.EndingCash != 11349.50 {
		t.Fatalf("ending cash = %.2f, want 11349.50", cf.EndingCash)
	}
}

func TestGeneralLedgerChronologicalOrder(t *testing.T) {
	lines := fixtureLines()
	// Shuffle so the builder has to sort.
	lines[0], lines[7] = lines[7], lines[0]
	lines[2], lines[5] = lines[5], lines[2]

	gl := BuildGeneralLedger(fixtureAccounts(), lines)
	if len(gl.Rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(gl.Rows))
	}
	for i := 1; i < len(gl.Rows); i++ {
		prev, cur := gl.Rows[i-1].Line, gl.Rows[i].Line
		if cur.Date.Before(prev.Date) {
			t.Fatalf("row %d out of order: %s before %s", i, cur.Date, prev.Date)
		}
		if cur.Date.Equal(prev.Date) && cur.ID < prev.ID {
			t.Fatalf("row %d same-day tie not broken by id: %d after %d", i, cur.ID, prev.ID)
		}
	}
	if gl.TotalDebit != gl.TotalCredit || gl.TotalDebit != 13250.50 {
		t.Fatalf("ledger totals debit %.2f credit %.2f, want 13250.50 each", gl.TotalDebit, gl.TotalCredit)
	}
	if gl.Rows[0].AccountCode == "" || gl.Rows[0].AccountName == "" {
		t.Fatalf("rows must carry account identity")
	}
}

func TestFilterLinesSharedAcrossProjections(t *testing.T) {
	accounts := fixtureAccounts()
	lines := fixtureLines()
	f := Filter{PropertyID: "p-2"}

	filtered := FilterLines(lines, f)
	if len(filtered) != 4 {
		t.Fatalf("got %d filtered lines, want 4", len(filtered))
	}

	balances := ReduceBalances(accounts, filtered)
	tb := BuildTrialBalance(balances)
	gl := BuildGeneralLedger(accounts, filtered)
	if tb.TotalDebit != gl.TotalDebit || tb.TotalCredit != gl.TotalCredit {
		t.Fatalf("trial balance and general ledger disagree under the same filter: tb %.2f/%.2f gl %.2f/%.2f",
			tb.TotalDebit, tb.TotalCredit, gl.TotalDebit, gl.TotalCredit)
	}
	if tb.TotalDebit != tb.TotalCredit {
		t.Fatalf("filtered journal out of balance: %.2f vs %.2f", tb.TotalDebit, tb.TotalCredit)
	}
}

func TestFilterLinesDateAndAccount(t *testing.T) {
	lines := fixtureLines()

	feb := FilterLines(lines, Filter{From: date(2024, time.February, 1), To: date(2024, time.February, 29)})
	if len(feb) != 4 {
		t.Fatalf("february filter: got %d lines, want 4", len(feb))
	}

	bankOnly := FilterLines(lines, Filter{AccountID: 1})
	if len(bankOnly) != 4 {
		t.Fatalf("account filter: got %d lines, want 4", len(bankOnly))
	}
	for _, l := range bankOnly {
		if l.AccountID != 1 {
			t.Fatalf("account filter leaked account %d", l.AccountID)
		}
	}

	// Boundary dates are inclusive on both ends.
	exact := FilterLines(lines, Filter{From: date(2024, time.March, 10), To: date(2024, time.March, 10)})
	if len(exact) != 2 {
		t.Fatalf("inclusive boundary filter: got %d lines, want 2", len(exact))
	}
}
