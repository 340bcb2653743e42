package reports

import (
	"sort"

	"github.com/propfolio/propfolio/internal/ledger"
)

// rentRollLookbackMonths widens the statement window behind the target
// month so the balance and arrears columns carry real context.
const rentRollLookbackMonths = 2

// BuildRentRoll reduces the snapshot into the rent roll for the
// filter's target month. Each occupied tenant contributes one row built
// from a statement over [month-2mo, month end]; units with no tenant
// row are synthesized as vacant rows. Occupancy, property, and unit
// type filters apply after construction, and totals cover the filtered
// set only.
func BuildRentRoll(snap Snapshot, f RentRollFilter) RentRollReport {
	monthStart := ledger.MonthStart(f.Month)
	monthEnd := ledger.MonthEnd(f.Month)
	windowStart := monthStart.AddDate(0, -rentRollLookbackMonths, 0)

	var rows []RentRollRow
	claimedUnits := make(map[string]bool)

	for _, tenant := range snap.Tenants {
		if f.PropertyID != "" && tenant.PropertyID != f.PropertyID {
			continue
		}
		payments := snap.Payments[tenant.ID]
		stmt := ledger.BuildStatement(tenant, windowStart, monthEnd, payments, ledger.StatementOptions{
			AdhocCharges: snap.Charges[tenant.ID],
		})

		var rentDue, rentReceived float64
		for _, r := range stmt.RowsInWindow(monthStart, monthEnd) {
			rentDue += r.Charge
			rentReceived += r.Payment
		}

		row := RentRollRow{
			TenantID:      tenant.ID,
			TenantName:    tenant.Name,
			PropertyID:    tenant.PropertyID,
			PropertyName:  snap.propertyName(tenant.PropertyID),
			Occupancy:     "Occupied",
			MonthlyRent:   tenant.MonthlyRent,
			RentDue:       ledger.Round2(rentDue),
			RentReceived:  ledger.Round2(rentReceived),
			Balance:       stmt.Totals.Balance,
			ArrearsStatus: ledger.ClassifyArrears(stmt.Rows, stmt.Totals.Balance, monthEnd),
		}

		if unit, ok := snap.unitByID(tenant.UnitID); ok {
			row.UnitLabel = unit.Label
			row.UnitType = unit.Type
			claimedUnits[unit.ID] = true
		}
		if dep, ok := snap.Deposits[tenant.ID]; ok {
			row.DepositHeld = dep.Held()
		}
		if lease, ok := ledger.InferLease(payments, monthEnd); ok {
			start := lease.Start
			row.LeaseStart = &start
			row.LeaseInferred = lease.Inferred
			if start.Year() == monthStart.Year() && start.Month() == monthStart.Month() {
				days := ledger.DaysInMonth(monthStart)
				occupied := days - start.Day() + 1
				row.ProratedRent = ledger.Round2(tenant.MonthlyRent * float64(occupied) / float64(days))
			}
		}
		row.ExpectedRent = tenant.MonthlyRent
		if row.ProratedRent > 0 {
			row.ExpectedRent = row.ProratedRent
		}

		rows = append(rows, row)
	}

	for _, unit := range snap.Units {
		if claimedUnits[unit.ID] {
			continue
		}
		if f.PropertyID != "" && unit.PropertyID != f.PropertyID {
			continue
		}
		rows = append(rows, RentRollRow{
			PropertyID:   unit.PropertyID,
			PropertyName: snap.propertyName(unit.PropertyID),
			UnitLabel:    unit.Label,
			UnitType:     unit.Type,
			Occupancy:    "Vacant",
			ExpectedRent: unit.AdvertisedRent,
		})
	}

	unitTypes := distinctUnitTypes(rows)
	rows = filterRentRollRows(rows, f)

	var totals RentRollTotals
	for _, r := range rows {
		totals.ExpectedRent += r.ExpectedRent
		totals.RentDue += r.RentDue
		totals.RentReceived += r.RentReceived
		totals.Balance += r.Balance
		totals.DepositHeld += r.DepositHeld
		if r.Occupancy == "Occupied" {
			totals.Occupied++
		} else {
			totals.Vacant++
		}
	}
	totals.ExpectedRent = ledger.Round2(totals.ExpectedRent)
	totals.RentDue = ledger.Round2(totals.RentDue)
	totals.RentReceived = ledger.Round2(totals.RentReceived)
	totals.Balance = ledger.Round2(totals.Balance)
	totals.DepositHeld = ledger.Round2(totals.DepositHeld)

	return RentRollReport{
		Month:     monthStart.Format("2006-01"),
		Rows:      rows,
		Totals:    totals,
		UnitTypes: unitTypes,
	}
}

func filterRentRollRows(rows []RentRollRow, f RentRollFilter) []RentRollRow {
	out := rows[:0]
	for _, r := range rows {
		switch f.Occupancy {
		case OccupancyOccupied:
			if r.Occupancy != "Occupied" {
				continue
			}
		case OccupancyVacant:
			if r.Occupancy != "Vacant" {
				continue
			}
		}
		if f.UnitType != "" && r.UnitType != f.UnitType {
			continue
		}
		out = append(out, r)
	}
	return out
}

func distinctUnitTypes(rows []RentRollRow) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range rows {
		if r.UnitType == "" || seen[r.UnitType] {
			continue
		}
		seen[r.UnitType] = true
		types = append(types, r.UnitType)
	}
	sort.Strings(types)
	return types
}
