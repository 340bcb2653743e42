package reports

import (
	"sort"
	"time"

	"github.com/propfolio/propfolio/internal/ledger"
)

// overdueLookbackMonths is the trailing statement window behind the
// reference date.
const overdueLookbackMonths = 6

// BuildOverdueRent reduces the snapshot into the overdue rent report at
// ref. Tenants with non-positive balances are skipped; the rest are
// thresholded on days overdue and on the inferred tenant status.
func BuildOverdueRent(snap Snapshot, f OverdueFilter, ref time.Time) OverdueReport {
	windowStart := ref.AddDate(0, -overdueLookbackMonths, 0)

	var rows []OverdueRow
	for _, tenant := range snap.Tenants {
		if f.PropertyID != "" && tenant.PropertyID != f.PropertyID {
			continue
		}
		stmt := ledger.BuildStatement(tenant, windowStart, ref, snap.Payments[tenant.ID], ledger.StatementOptions{
			AdhocCharges: snap.Charges[tenant.ID],
		})
		if stmt.Totals.Balance <= 0 {
			continue
		}

		days, _ := ledger.DaysOverdue(stmt.Rows, ref)
		if days < f.MinDays {
			continue
		}

		row := OverdueRow{
			TenantID:      tenant.ID,
			TenantName:    tenant.Name,
			PropertyID:    tenant.PropertyID,
			PropertyName:  snap.propertyName(tenant.PropertyID),
			Balance:       stmt.Totals.Balance,
			DaysOverdue:   days,
			ArrearsStatus: ledger.ClassifyArrears(stmt.Rows, stmt.Totals.Balance, ref),
			TenantStatus:  TenantStatusMovedOut,
		}
		if unit, ok := snap.unitByID(tenant.UnitID); ok {
			row.UnitLabel = unit.Label
		}
		if oldest, ok := ledger.OldestUnpaidCharge(stmt.Rows); ok {
			d := oldest.Date
			row.OldestCharge = &d
		}
		if last, ok := stmt.LastPaymentDate(); ok {
			d := last
			row.LastPaymentDate = &d
			if ledger.DaysBetween(last, ref) < activePaymentWindowDays {
				row.TenantStatus = TenantStatusActive
			}
		}
		if f.TenantStatus != "" && f.TenantStatus != TenantStatusAll && row.TenantStatus != f.TenantStatus {
			continue
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Balance != rows[j].Balance {
			return rows[i].Balance > rows[j].Balance
		}
		return rows[i].DaysOverdue > rows[j].DaysOverdue
	})

	var totals OverdueTotals
	for _, r := range rows {
		totals.Balance += r.Balance
	}
	totals.Balance = ledger.Round2(totals.Balance)
	totals.Tenants = len(rows)

	worst := rows
	if len(worst) > 10 {
		worst = worst[:10]
	}

	return OverdueReport{Rows: rows, Totals: totals, WorstTen: worst}
}
