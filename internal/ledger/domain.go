// Package ledger reconstructs per-tenant running balances from charge
// and payment records and classifies arrears. Everything here is a pure
// computation over snapshots; nothing persists state.
package ledger

import (
	"time"
)

// PaymentSource tags where a payment record originated.
type PaymentSource string

const (
	SourceBank   PaymentSource = "bank"
	SourceManual PaymentSource = "manual"
)

// EntryKind discriminates statement rows.
type EntryKind string

const (
	EntryCharge  EntryKind = "charge"
	EntryPayment EntryKind = "payment"
)

// Tenant is the snapshot used for recurring charge generation.
type Tenant struct {
	ID          string
	Name        string
	PropertyID  string
	UnitID      string
	MonthlyRent float64
	RentDueDay  int
	Reference   string
}

// Charge is a dated obligation. Amount is never negative.
type Charge struct {
	Date        time.Time
	Amount      float64
	Description string
	Category    string
}

// Payment is a dated receipt normalized from the bank or manual feed.
type Payment struct {
	TenantID    string
	Date        time.Time
	Amount      float64
	Description string
	Source      PaymentSource
}

// StatementRow is one ledger line. Exactly one of Charge or Payment is
// non-zero; Balance is the running balance after this row.
type StatementRow struct {
	Date        time.Time     `json:"date"`
	Kind        EntryKind     `json:"kind"`
	Description string        `json:"description"`
	Charge      float64       `json:"charge"`
	Payment     float64       `json:"payment"`
	Balance     float64       `json:"balance"`
	Source      PaymentSource `json:"source,omitempty"`
}

// StatementTotals summarises a statement. Balance = Charges - Payments,
// rounded to cents, and equals the final row's running balance.
type StatementTotals struct {
	Charges  float64 `json:"charges"`
	Payments float64 `json:"payments"`
	Balance  float64 `json:"balance"`
}

// Statement is the merged charge/payment ledger for one tenant over one
// [Start, End] window.
type Statement struct {
	Tenant Tenant          `json:"tenant"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Rows   []StatementRow  `json:"rows"`
	Totals StatementTotals `json:"totals"`
}

// Deposit tracks tenancy deposit movement outside the rent ledger.
type Deposit struct {
	TenantID string
	Charged  float64
	Received float64
	Released float64
	Notes    string
}

// Held returns the deposit currently held for the tenant. Never derived
// from the statement ledger.
func (d Deposit) Held() float64 {
	return Round2(d.Received - d.Released)
}

// Unit models rentable inventory for vacancy classification.
type Unit struct {
	ID             string
	PropertyID     string
	Label          string
	Floor          string
	Type           string
	Beds           int
	AdvertisedRent float64
	Occupied       bool
}

// Lease is the tenancy timeline inferred from payment history. Inferred
// is always true in this data path; there is no explicit lease record.
type Lease struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Inferred bool      `json:"inferred"`
}
