package ledger

import (
	"sort"
	"time"
)

// InferLease derives a tenancy timeline from payment history: start is
// the first-ever payment date, end is the lease anniversary rolled
// forward one year at a time until it lands after pivot. This is a
// proxy, not ground truth: nothing in this data path carries an
// explicit lease record, so the result is always marked Inferred.
func InferLease(payments []Payment, pivot time.Time) (Lease, bool) {
	if len(payments) == 0 {
		return Lease{}, false
	}
	first := payments[0].Date
	for _, p := range payments[1:] {
		if p.Date.Before(first) {
			first = p.Date
		}
	}

	end := first.AddDate(1, 0, 0)
	for !end.After(pivot) {
		end = end.AddDate(1, 0, 0)
	}

	return Lease{Start: first, End: end, Inferred: true}, true
}

// FirstPaymentDate returns the earliest payment date in the list.
func FirstPaymentDate(payments []Payment) (time.Time, bool) {
	if len(payments) == 0 {
		return time.Time{}, false
	}
	dates := make([]time.Time, len(payments))
	for i, p := range payments {
		dates[i] = p.Date
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates[0], true
}
