// Package reports reduces per-tenant statements into portfolio-level
// views: rent roll, overdue rent, lease expiry, and the rent-charge
// schedule. Each report owns its row shape; the shared substrate is
// ledger.Statement.
package reports

import (
	"time"

	"github.com/propfolio/propfolio/internal/ledger"
)

// Occupancy filter values.
const (
	OccupancyOccupied = "occupied"
	OccupancyVacant   = "vacant"
	OccupancyAll      = "all"
)

// Tenant status values inferred from payment recency.
const (
	TenantStatusActive   = "active"
	TenantStatusMovedOut = "moved_out"
	TenantStatusAll      = "all"
)

// Renewal status labels by proximity to the lease anniversary.
const (
	RenewalPending   = "Pending"
	RenewalSent      = "Sent"
	RenewalConfirmed = "Confirmed"
)

// activePaymentWindowDays bounds how stale a tenant's last payment may
// be before the tenant is considered moved out.
const activePaymentWindowDays = 120

// defaultNoticePeriodDays is the notice period surfaced on lease
// expiry rows.
const defaultNoticePeriodDays = 30

// Snapshot is the full read-only universe a report run reduces over.
// Payments and Charges are indexed by tenant id; payment lists are
// ascending by date.
type Snapshot struct {
	Tenants    []ledger.Tenant
	Payments   map[string][]ledger.Payment
	Charges    map[string][]ledger.Charge
	Units      []ledger.Unit
	Deposits   map[string]ledger.Deposit
	Properties map[string]string
}

// RentRollFilter selects and segments rent roll rows.
type RentRollFilter struct {
	PropertyID string
	Month      time.Time
	UnitType   string
	Occupancy  string
}

// RentRollRow is one tenant or vacant unit in the rent roll.
type RentRollRow struct {
	TenantID      string     `json:"tenantId,omitempty"`
	TenantName    string     `json:"tenantName,omitempty"`
	PropertyID    string     `json:"propertyId"`
	PropertyName  string     `json:"propertyName"`
	UnitLabel     string     `json:"unitLabel"`
	UnitType      string     `json:"unitType"`
	Occupancy     string     `json:"occupancy"`
	MonthlyRent   float64    `json:"monthlyRent"`
	ProratedRent  float64    `json:"proratedRent"`
	ExpectedRent  float64    `json:"expectedRent"`
	RentDue       float64    `json:"rentDue"`
	RentReceived  float64    `json:"rentReceived"`
	Balance       float64    `json:"balance"`
	DepositHeld   float64    `json:"depositHeld"`
	ArrearsStatus string     `json:"arrearsStatus,omitempty"`
	LeaseStart    *time.Time `json:"leaseStart,omitempty"`
	LeaseInferred bool       `json:"leaseInferred,omitempty"`
}

// RentRollTotals aggregates the filtered row set.
type RentRollTotals struct {
	ExpectedRent float64 `json:"expectedRent"`
	RentDue      float64 `json:"rentDue"`
	RentReceived float64 `json:"rentReceived"`
	Balance      float64 `json:"balance"`
	DepositHeld  float64 `json:"depositHeld"`
	Occupied     int     `json:"occupied"`
	Vacant       int     `json:"vacant"`
}

// RentRollReport is the rent roll result.
type RentRollReport struct {
	Month     string         `json:"month"`
	Rows      []RentRollRow  `json:"rows"`
	Totals    RentRollTotals `json:"totals"`
	UnitTypes []string       `json:"unitTypes"`
}

// OverdueFilter selects overdue rent rows.
type OverdueFilter struct {
	PropertyID   string
	MinDays      int
	TenantStatus string
}

// OverdueRow is one tenant carrying a positive balance.
type OverdueRow struct {
	TenantID        string     `json:"tenantId"`
	TenantName      string     `json:"tenantName"`
	PropertyID      string     `json:"propertyId"`
	PropertyName    string     `json:"propertyName"`
	UnitLabel       string     `json:"unitLabel"`
	Balance         float64    `json:"balance"`
	DaysOverdue     int        `json:"daysOverdue"`
	ArrearsStatus   string     `json:"arrearsStatus"`
	OldestCharge    *time.Time `json:"oldestCharge,omitempty"`
	LastPaymentDate *time.Time `json:"lastPaymentDate,omitempty"`
	TenantStatus    string     `json:"tenantStatus"`
}

// OverdueTotals aggregates the filtered row set.
type OverdueTotals struct {
	Balance float64 `json:"balance"`
	Tenants int     `json:"tenants"`
}

// OverdueReport is the overdue rent result.
type OverdueReport struct {
	Rows     []OverdueRow  `json:"rows"`
	Totals   OverdueTotals `json:"totals"`
	WorstTen []OverdueRow  `json:"worstTen"`
}

// LeaseExpiryFilter selects lease expiry rows.
type LeaseExpiryFilter struct {
	PropertyID string
	RangeDays  int
}

// LeaseExpiryRow is one tenant whose inferred anniversary falls in the
// reporting range.
type LeaseExpiryRow struct {
	TenantID         string    `json:"tenantId"`
	TenantName       string    `json:"tenantName"`
	PropertyID       string    `json:"propertyId"`
	PropertyName     string    `json:"propertyName"`
	UnitLabel        string    `json:"unitLabel"`
	LeaseStart       time.Time `json:"leaseStart"`
	LeaseEnd         time.Time `json:"leaseEnd"`
	Inferred         bool      `json:"inferred"`
	DaysUntilExpiry  int       `json:"daysUntilExpiry"`
	RenewalStatus    string    `json:"renewalStatus"`
	NoticePeriodDays int       `json:"noticePeriodDays"`
	NoticeDate       time.Time `json:"noticeDate"`
}

// LeaseExpiryTotals counts rows per renewal status.
type LeaseExpiryTotals struct {
	Expiring  int `json:"expiring"`
	Pending   int `json:"pending"`
	Sent      int `json:"sent"`
	Confirmed int `json:"confirmed"`
}

// LeaseExpiryReport is the lease expiry result.
type LeaseExpiryReport struct {
	Rows   []LeaseExpiryRow  `json:"rows"`
	Totals LeaseExpiryTotals `json:"totals"`
}

// RentChargesFilter selects rent-charge schedule rows.
type RentChargesFilter struct {
	PropertyID string
	Month      time.Time
}

// RentChargeRow is one scheduled charge in the month.
type RentChargeRow struct {
	TenantID     string    `json:"tenantId"`
	TenantName   string    `json:"tenantName"`
	PropertyID   string    `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	UnitLabel    string    `json:"unitLabel"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
}

// RentChargesTotals splits the schedule into recurring and ad-hoc.
type RentChargesTotals struct {
	Amount    float64 `json:"amount"`
	Recurring float64 `json:"recurring"`
	Adhoc     float64 `json:"adhoc"`
}

// RentChargesReport is the rent-charge schedule result.
type RentChargesReport struct {
	Month  string            `json:"month"`
	Rows   []RentChargeRow   `json:"rows"`
	Totals RentChargesTotals `json:"totals"`
}

func (s Snapshot) propertyName(id string) string {
	if name, ok := s.Properties[id]; ok {
		return name
	}
	return id
}

func (s Snapshot) unitByID(id string) (ledger.Unit, bool) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, true
		}
	}
	return ledger.Unit{}, false
}
