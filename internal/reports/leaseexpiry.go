package reports

import (
	"sort"
	"time"

	"github.com/propfolio/propfolio/internal/ledger"
)

// BuildLeaseExpiry reduces the snapshot into the lease expiry report at
// ref. Lease timelines are inferred from payment history (anniversary
// rolled forward yearly), never from an explicit lease record, and rows
// carry the Inferred flag so consumers can treat them as a proxy.
func BuildLeaseExpiry(snap Snapshot, f LeaseExpiryFilter, ref time.Time) LeaseExpiryReport {
	rangeDays := f.RangeDays
	if rangeDays <= 0 {
		rangeDays = 90
	}
	horizon := ref.AddDate(0, 0, rangeDays)

	var rows []LeaseExpiryRow
	for _, tenant := range snap.Tenants {
		if f.PropertyID != "" && tenant.PropertyID != f.PropertyID {
			continue
		}
		lease, ok := ledger.InferLease(snap.Payments[tenant.ID], ref)
		if !ok {
			continue
		}
		if lease.End.Before(ref) || lease.End.After(horizon) {
			continue
		}

		days := ledger.DaysBetween(ref, lease.End)
		row := LeaseExpiryRow{
			TenantID:         tenant.ID,
			TenantName:       tenant.Name,
			PropertyID:       tenant.PropertyID,
			PropertyName:     snap.propertyName(tenant.PropertyID),
			LeaseStart:       lease.Start,
			LeaseEnd:         lease.End,
			Inferred:         lease.Inferred,
			DaysUntilExpiry:  days,
			RenewalStatus:    renewalStatus(days),
			NoticePeriodDays: defaultNoticePeriodDays,
			NoticeDate:       lease.End.AddDate(0, 0, -defaultNoticePeriodDays),
		}
		if unit, ok := snap.unitByID(tenant.UnitID); ok {
			row.UnitLabel = unit.Label
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LeaseEnd.Before(rows[j].LeaseEnd)
	})

	var totals LeaseExpiryTotals
	totals.Expiring = len(rows)
	for _, r := range rows {
		switch r.RenewalStatus {
		case RenewalPending:
			totals.Pending++
		case RenewalSent:
			totals.Sent++
		case RenewalConfirmed:
			totals.Confirmed++
		}
	}

	return LeaseExpiryReport{Rows: rows, Totals: totals}
}

// renewalStatus labels renewal workflow urgency by proximity to the
// anniversary.
func renewalStatus(daysUntil int) string {
	switch {
	case daysUntil <= 15:
		return RenewalPending
	case daysUntil <= 45:
		return RenewalSent
	default:
		return RenewalConfirmed
	}
}
