package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propfolio/propfolio/internal/ledger"
)

// TenantCharge is an ad-hoc charge row joined to its tenant.
type TenantCharge struct {
	TenantID string
	Charge   ledger.Charge
}

// RepositoryPort defines the snapshot fetches a report run needs.
type RepositoryPort interface {
	ListTenants(ctx context.Context) ([]ledger.Tenant, error)
	ListBankPayments(ctx context.Context) ([]ledger.PaymentRecord, error)
	ListManualPayments(ctx context.Context) ([]ledger.PaymentRecord, error)
	ListUnits(ctx context.Context) ([]ledger.Unit, error)
	ListDeposits(ctx context.Context) ([]ledger.Deposit, error)
	ListTenantCharges(ctx context.Context) ([]TenantCharge, error)
	ListProperties(ctx context.Context) (map[string]string, error)
}

// Repository provides PostgreSQL backed snapshot reads.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListTenants returns the tenant universe.
func (r *Repository) ListTenants(ctx context.Context) ([]ledger.Tenant, error) {
	query := `
		SELECT id, name, property_id, unit_id, monthly_rent, rent_due_day, reference
		FROM tenants
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports: list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []ledger.Tenant
	for rows.Next() {
		var t ledger.Tenant
		var unitID, reference pgtype.Text
		if err := rows.Scan(&t.ID, &t.Name, &t.PropertyID, &unitID, &t.MonthlyRent, &t.RentDueDay, &reference); err != nil {
			return nil, fmt.Errorf("reports: scan tenant: %w", err)
		}
		t.UnitID = unitID.String
		t.Reference = reference.String
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

// ListBankPayments returns raw bank-feed payment rows. Tenant refs are
// returned untouched; normalization happens in the ledger package.
func (r *Repository) ListBankPayments(ctx context.Context) ([]ledger.PaymentRecord, error) {
	query := `
		SELECT tenant_ref, paid_at, amount, description
		FROM bank_payments
		ORDER BY paid_at`
	return r.listPaymentRecords(ctx, query, "bank payments")
}

// ListManualPayments returns manually recorded payment rows.
func (r *Repository) ListManualPayments(ctx context.Context) ([]ledger.PaymentRecord, error) {
	query := `
		SELECT tenant_id, paid_at, amount, description
		FROM manual_payments
		ORDER BY paid_at`
	return r.listPaymentRecords(ctx, query, "manual payments")
}

func (r *Repository) listPaymentRecords(ctx context.Context, query, label string) ([]ledger.PaymentRecord, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports: list %s: %w", label, err)
	}
	defer rows.Close()

	var records []ledger.PaymentRecord
	for rows.Next() {
		var rec ledger.PaymentRecord
		var ref, desc pgtype.Text
		if err := rows.Scan(&ref, &rec.Date, &rec.Amount, &desc); err != nil {
			return nil, fmt.Errorf("reports: scan %s: %w", label, err)
		}
		rec.TenantRef = ref.String
		rec.Description = desc.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListUnits returns rentable inventory.
func (r *Repository) ListUnits(ctx context.Context) ([]ledger.Unit, error) {
	query := `
		SELECT id, property_id, label, floor, unit_type, beds, advertised_rent, occupied
		FROM units
		ORDER BY property_id, label`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports: list units: %w", err)
	}
	defer rows.Close()

	var units []ledger.Unit
	for rows.Next() {
		var u ledger.Unit
		var floor pgtype.Text
		if err := rows.Scan(&u.ID, &u.PropertyID, &u.Label, &floor, &u.Type, &u.Beds, &u.AdvertisedRent, &u.Occupied); err != nil {
			return nil, fmt.Errorf("reports: scan unit: %w", err)
		}
		u.Floor = floor.String
		units = append(units, u)
	}
	return units, rows.Err()
}

// ListDeposits returns tenancy deposit positions.
func (r *Repository) ListDeposits(ctx context.Context) ([]ledger.Deposit, error) {
	query := `
		SELECT tenant_id, charged, received, released, COALESCE(notes, '')
		FROM deposits`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports: list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []ledger.Deposit
	for rows.Next() {
		var d ledger.Deposit
		if err := rows.Scan(&d.TenantID, &d.Charged, &d.Received, &d.Released, &d.Notes); err != nil {
			return nil, fmt.Errorf("reports: scan deposit: %w", err)
		}
		deposits = append(deposits, d)
	}
	return deposits, rows.Err()
}

// ListTenantCharges returns ad-hoc charges (utility true-ups, fees).
func (r *Repository) ListTenantCharges(ctx context.Context) ([]TenantCharge, error) {
	query := `
		SELECT tenant_id, charged_at, amount, description, COALESCE(category, '')
		FROM tenant_charges
		ORDER BY charged_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports: list tenant charges: %w", err)
	}
	defer rows.Close()

	var charges []TenantCharge
	for rows.Next() {
		var tc TenantCharge
		if err := rows.Scan(&tc.TenantID, &tc.Charge.Date, &tc.Charge.Amount, &tc.Charge.Description, &tc.Charge.Category); err != nil {
			return nil, fmt.Errorf("reports: scan tenant charge: %w", err)
		}
		charges = append(charges, tc)
	}
	return charges, rows.Err()
}

// ListProperties returns the property-name lookup.
func (r *Repository) ListProperties(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM properties`)
	if err != nil {
		return nil, fmt.Errorf("reports: list properties: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("reports: scan property: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
