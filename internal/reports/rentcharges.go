package reports

import (
	"sort"

	"github.com/propfolio/propfolio/internal/ledger"
)

// BuildRentCharges reduces the snapshot into the charge schedule for
// the filter's month: every recurring rent charge synthesized for the
// month plus ad-hoc charges dated inside it.
func BuildRentCharges(snap Snapshot, f RentChargesFilter) RentChargesReport {
	monthStart := ledger.MonthStart(f.Month)
	monthEnd := ledger.MonthEnd(f.Month)

	var rows []RentChargeRow
	var totals RentChargesTotals

	for _, tenant := range snap.Tenants {
		if f.PropertyID != "" && tenant.PropertyID != f.PropertyID {
			continue
		}
		unitLabel := ""
		if unit, ok := snap.unitByID(tenant.UnitID); ok {
			unitLabel = unit.Label
		}
		for _, c := range ledger.BuildCharges(tenant, monthStart, monthEnd, snap.Charges[tenant.ID]) {
			rows = append(rows, RentChargeRow{
				TenantID:     tenant.ID,
				TenantName:   tenant.Name,
				PropertyID:   tenant.PropertyID,
				PropertyName: snap.propertyName(tenant.PropertyID),
				UnitLabel:    unitLabel,
				Date:         c.Date,
				Description:  c.Description,
				Category:     c.Category,
				Amount:       c.Amount,
			})
			totals.Amount += c.Amount
			if c.Category == "rent" {
				totals.Recurring += c.Amount
			} else {
				totals.Adhoc += c.Amount
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].TenantName < rows[j].TenantName
	})

	totals.Amount = ledger.Round2(totals.Amount)
	totals.Recurring = ledger.Round2(totals.Recurring)
	totals.Adhoc = ledger.Round2(totals.Adhoc)

	return RentChargesReport{
		Month:  monthStart.Format("2006-01"),
		Rows:   rows,
		Totals: totals,
	}
}
