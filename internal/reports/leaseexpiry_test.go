package reports

import (
	"testing"
	"time"

	"github.com/propfolio/propfolio/internal/ledger"
	_ "github.com/propfolio/propfolio/testing"
)

func leaseExpirySnapshot() Snapshot {
	tenants := []ledger.Tenant{
		{ID: "t-1", Name: "Asha Noor", PropertyID: "p-1", UnitID: "u-1", MonthlyRent: 1000, RentDueDay: 5},
		{ID: "t-2", Name: "Ben Okoro", PropertyID: "p-1", UnitID: "u-2", MonthlyRent: 900, RentDueDay: 1},
		{ID: "t-3", Name: "Carla Mendes", PropertyID: "p-2", UnitID: "u-3", MonthlyRent: 1200, RentDueDay: 1},
	}
	payments := map[string][]ledger.Payment{
		// First payment 2023-07-10: anniversary 2025-07-10 (10 days out).
		"t-1": {{TenantID: "t-1", Date: date(2023, time.July, 10), Amount: 1000}},
		// First payment 2024-08-05: anniversary 2025-08-05 (36 days out).
		"t-2": {{TenantID: "t-2", Date: date(2024, time.August, 5), Amount: 900}},
		// First payment 2024-12-20: anniversary 2025-12-20, outside a
		// 90-day horizon from 2025-06-30.
		"t-3": {{TenantID: "t-3", Date: date(2024, time.December, 20), Amount: 1200}},
	}
	return Snapshot{
		Tenants:    tenants,
		Payments:   payments,
		Charges:    map[string][]ledger.Charge{},
		Properties: map[string]string{"p-1": "Harbour House", "p-2": "Mill Court"},
	}
}

func TestBuildLeaseExpiryWindowAndStatuses(t *testing.T) {
	ref := date(2025, time.June, 30)
	report := BuildLeaseExpiry(leaseExpirySnapshot(), LeaseExpiryFilter{RangeDays: 90}, ref)

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 expiring leases, got %d", len(report.Rows))
	}
	// Sorted by lease end: t-1 (July 10) before t-2 (August 5).
	if report.Rows[0].TenantID != "t-1" || report.Rows[1].TenantID != "t-2" {
		t.Fatalf("rows out of order: %+v", report.Rows)
	}
	if report.Rows[0].RenewalStatus != RenewalPending {
		t.Fatalf("10 days out must be Pending, got %q", report.Rows[0].RenewalStatus)
	}
	if report.Rows[1].RenewalStatus != RenewalSent {
		t.Fatalf("36 days out must be Sent, got %q", report.Rows[1].RenewalStatus)
	}
	if report.Totals.Expiring != 2 || report.Totals.Pending != 1 || report.Totals.Sent != 1 {
		t.Fatalf("unexpected totals: %+v", report.Totals)
	}
}

func TestBuildLeaseExpiryRollsAnniversaries(t *testing.T) {
	ref := date(2025, time.June, 30)
	report := BuildLeaseExpiry(leaseExpirySnapshot(), LeaseExpiryFilter{RangeDays: 90}, ref)

	row := report.Rows[0]
	if !row.LeaseStart.Equal(date(2023, time.July, 10)) {
		t.Fatalf("lease start %v", row.LeaseStart)
	}
	// 2023 start rolled forward two anniversaries, not a fixed term.
	if !row.LeaseEnd.Equal(date(2025, time.July, 10)) {
		t.Fatalf("lease end %v, want rolled to 2025-07-10", row.LeaseEnd)
	}
	if !row.Inferred {
		t.Fatal("lease rows must carry the inferred flag")
	}
	if !row.NoticeDate.Equal(date(2025, time.June, 10)) {
		t.Fatalf("notice date %v, want expiry minus 30 days", row.NoticeDate)
	}
	if row.NoticePeriodDays != 30 {
		t.Fatalf("notice period %d", row.NoticePeriodDays)
	}
}

func TestBuildLeaseExpiryConfirmedBeyond45Days(t *testing.T) {
	ref := date(2025, time.June, 1)
	// At June 1, t-2's anniversary (August 5) is 65 days out.
	report := BuildLeaseExpiry(leaseExpirySnapshot(), LeaseExpiryFilter{RangeDays: 90, PropertyID: "p-1"}, ref)

	for _, r := range report.Rows {
		if r.TenantID == "t-2" {
			if r.RenewalStatus != RenewalConfirmed {
				t.Fatalf("65 days out must be Confirmed, got %q", r.RenewalStatus)
			}
			return
		}
	}
	t.Fatal("t-2 missing from report")
}

func TestBuildLeaseExpiryPropertyFilter(t *testing.T) {
	ref := date(2025, time.November, 1)
	report := BuildLeaseExpiry(leaseExpirySnapshot(), LeaseExpiryFilter{RangeDays: 60, PropertyID: "p-2"}, ref)
	if len(report.Rows) != 1 || report.Rows[0].TenantID != "t-3" {
		t.Fatalf("property filter wrong: %+v", report.Rows)
	}
}
