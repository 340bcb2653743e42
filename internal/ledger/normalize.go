package ledger

import (
	"sort"
	"strings"
	"time"
)

// PaymentRecord is a raw row from either payment feed before
// normalization. TenantRef may carry import artifacts.
type PaymentRecord struct {
	TenantRef   string
	Date        time.Time
	Amount      float64
	Description string
}

// NormalizeTenantRef cleans a tenant id that may have round-tripped
// through a spreadsheet: surrounding whitespace is trimmed and a single
// trailing ".0" float-format artifact is stripped. Legacy data depends
// on this exact suffix strip.
func NormalizeTenantRef(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimSuffix(ref, ".0")
	return ref
}

// MergePayments unions the bank and manual feeds into one tagged list.
// The feeds share no key, so no de-duplication is attempted: a receipt
// recorded in both stays counted twice on purpose (manual entries exist
// for receipts that never hit the bank feed). Bank records whose tenant
// ref does not resolve are dropped; they cannot be attributed.
func MergePayments(bank, manual []PaymentRecord) []Payment {
	out := make([]Payment, 0, len(bank)+len(manual))
	for _, rec := range bank {
		id := NormalizeTenantRef(rec.TenantRef)
		if id == "" {
			continue
		}
		out = append(out, Payment{
			TenantID:    id,
			Date:        rec.Date,
			Amount:      rec.Amount,
			Description: rec.Description,
			Source:      SourceBank,
		})
	}
	for _, rec := range manual {
		id := NormalizeTenantRef(rec.TenantRef)
		if id == "" {
			continue
		}
		out = append(out, Payment{
			TenantID:    id,
			Date:        rec.Date,
			Amount:      rec.Amount,
			Description: rec.Description,
			Source:      SourceManual,
		})
	}
	return out
}

// IndexPaymentsByTenant groups payments by tenant id with each list in
// ascending date order. The sort is stable so same-day payments keep
// feed order.
func IndexPaymentsByTenant(payments []Payment) map[string][]Payment {
	idx := make(map[string][]Payment)
	for _, p := range payments {
		idx[p.TenantID] = append(idx[p.TenantID], p)
	}
	for id := range idx {
		list := idx[id]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Date.Before(list[j].Date)
		})
		idx[id] = list
	}
	return idx
}
