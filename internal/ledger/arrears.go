package ledger

import (
	"fmt"
	"time"
)

// Arrears status labels. The bucket names are fixed display strings the
// back office filters on; do not reword them.
const (
	ArrearsInCredit = "In Credit"
	ArrearsCurrent  = "Current"
	ArrearsPending  = "Pending"
)

// OldestUnpaidCharge returns the first charge row whose running balance
// is still positive: the charge the tenant has been carrying longest.
func OldestUnpaidCharge(rows []StatementRow) (StatementRow, bool) {
	for _, r := range rows {
		if r.Kind == EntryCharge && r.Balance > 0 {
			return r, true
		}
	}
	return StatementRow{}, false
}

// DaysOverdue reports how many whole days the oldest unpaid charge has
// been outstanding at ref. ok is false when no charge row carries a
// positive running balance.
func DaysOverdue(rows []StatementRow, ref time.Time) (int, bool) {
	oldest, ok := OldestUnpaidCharge(rows)
	if !ok {
		return 0, false
	}
	return DaysBetween(oldest.Date, ref), true
}

// ClassifyArrears derives the aging label for a statement balance at
// ref. A positive balance with no surviving charge row is a data
// anomaly reported as Pending.
func ClassifyArrears(rows []StatementRow, balance float64, ref time.Time) string {
	switch {
	case balance < 0:
		return ArrearsInCredit
	case balance == 0:
		return ArrearsCurrent
	}
	days, ok := DaysOverdue(rows, ref)
	if !ok {
		return ArrearsPending
	}
	switch {
	case days >= 90:
		return fmt.Sprintf("90+ days (%dd)", days)
	case days >= 60:
		return fmt.Sprintf("61-90 days (%dd)", days)
	case days >= 30:
		return fmt.Sprintf("31-60 days (%dd)", days)
	default:
		return fmt.Sprintf("0-30 days (%dd)", days)
	}
}
