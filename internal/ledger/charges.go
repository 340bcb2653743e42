package ledger

import (
	"fmt"
	"sort"
	"time"
)

// MonthlyCharges synthesizes the tenant's recurring rent charges due in
// [start, end]. Each calendar month contributes one charge dated
// min(due day, days in month). Tenants without a positive monthly rent
// produce nothing.
func MonthlyCharges(tenant Tenant, start, end time.Time) []Charge {
	if tenant.MonthlyRent <= 0 || end.Before(start) {
		return nil
	}
	dueDay := tenant.RentDueDay
	if dueDay < 1 {
		dueDay = 1
	}

	var charges []Charge
	for cursor := MonthStart(start); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		day := dueDay
		if dim := DaysInMonth(cursor); day > dim {
			day = dim
		}
		due := time.Date(cursor.Year(), cursor.Month(), day, 0, 0, 0, 0, time.UTC)
		if !inWindow(due, start, end) {
			continue
		}
		charges = append(charges, Charge{
			Date:        due,
			Amount:      tenant.MonthlyRent,
			Description: fmt.Sprintf("Rent %s", due.Format("January 2006")),
			Category:    "rent",
		})
	}
	return charges
}

// BuildCharges merges recurring rent with ad-hoc charges dated inside
// [start, end], ascending by date. Ad-hoc charges keep their category
// verbatim.
func BuildCharges(tenant Tenant, start, end time.Time, adhoc []Charge) []Charge {
	charges := MonthlyCharges(tenant, start, end)
	for _, c := range adhoc {
		if !inWindow(c.Date, start, end) {
			continue
		}
		charges = append(charges, c)
	}
	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].Date.Before(charges[j].Date)
	})
	return charges
}
