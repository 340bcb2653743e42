package ledger

import (
	"testing"
	"time"

	_ "github.com/propfolio/propfolio/testing"
)

func TestClassifyArrearsBuckets(t *testing.T) {
	chargeDate := date(2025, time.January, 5)
	rows := []StatementRow{{Date: chargeDate, Kind: EntryCharge, Charge: 1000, Balance: 1000}}

	cases := []struct {
		ref  time.Time
		want string
	}{
		{chargeDate.AddDate(0, 0, 10), "0-30 days (10d)"},
		{chargeDate.AddDate(0, 0, 29), "0-30 days (29d)"},
		{chargeDate.AddDate(0, 0, 30), "31-60 days (30d)"},
		{chargeDate.AddDate(0, 0, 59), "31-60 days (59d)"},
		{chargeDate.AddDate(0, 0, 60), "61-90 days (60d)"},
		{chargeDate.AddDate(0, 0, 89), "61-90 days (89d)"},
		{chargeDate.AddDate(0, 0, 90), "90+ days (90d)"},
		{chargeDate.AddDate(0, 0, 400), "90+ days (400d)"},
	}
	for _, tc := range cases {
		if got := ClassifyArrears(rows, 1000, tc.ref); got != tc.want {
			t.Fatalf("at %v got %q want %q", tc.ref, got, tc.want)
		}
	}
}

func TestClassifyArrearsPendingAnomaly(t *testing.T) {
	// Positive balance but no charge row still carrying it.
	rows := []StatementRow{{Date: date(2025, time.January, 5), Kind: EntryPayment, Payment: 50, Balance: -50}}
	if got := ClassifyArrears(rows, 120, date(2025, time.February, 1)); got != ArrearsPending {
		t.Fatalf("expected Pending, got %q", got)
	}
}

func TestDaysOverdueMonotonicInReferenceDate(t *testing.T) {
	rows := []StatementRow{{Date: date(2025, time.January, 5), Kind: EntryCharge, Charge: 900, Balance: 900}}
	prev := -1
	for d := 0; d <= 200; d += 7 {
		days, ok := DaysOverdue(rows, date(2025, time.January, 5).AddDate(0, 0, d))
		if !ok {
			t.Fatalf("expected overdue charge at offset %d", d)
		}
		if days < prev {
			t.Fatalf("daysOverdue decreased: %d after %d", days, prev)
		}
		prev = days
	}
}

func TestDaysOverdueNeverNegative(t *testing.T) {
	rows := []StatementRow{{Date: date(2025, time.June, 5), Kind: EntryCharge, Charge: 100, Balance: 100}}
	days, ok := DaysOverdue(rows, date(2025, time.June, 1))
	if !ok || days != 0 {
		t.Fatalf("expected floor at 0, got %d ok=%v", days, ok)
	}
}

func TestOldestUnpaidChargeSkipsChargesAbsorbedByCredit(t *testing.T) {
	// An up-front credit absorbs the January charge entirely; February is
	// the first charge the tenant actually carries.
	rows := []StatementRow{
		{Date: date(2025, time.January, 2), Kind: EntryPayment, Payment: 1000, Balance: -1000},
		{Date: date(2025, time.January, 5), Kind: EntryCharge, Charge: 1000, Balance: 0},
		{Date: date(2025, time.February, 5), Kind: EntryCharge, Charge: 1000, Balance: 1000},
	}
	oldest, ok := OldestUnpaidCharge(rows)
	if !ok {
		t.Fatal("expected an unpaid charge")
	}
	if !oldest.Date.Equal(date(2025, time.February, 5)) {
		t.Fatalf("expected February charge, got %v", oldest.Date)
	}
}
