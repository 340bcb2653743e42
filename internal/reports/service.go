package reports

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/propfolio/propfolio/internal/ledger"
	"github.com/propfolio/propfolio/internal/platform/cache"
	"github.com/propfolio/propfolio/internal/platform/httpx"
)

// Service loads collaborator snapshots and runs the report reducers.
// Reports never mutate anything; every call recomputes from a fresh
// snapshot unless the cache answers first.
type Service struct {
	repo   RepositoryPort
	cache  *cache.ReportCache
	logger *slog.Logger
	group  singleflight.Group
	now    func() time.Time
}

// NewService builds a Service instance. cache may be nil.
func NewService(repo RepositoryPort, reportCache *cache.ReportCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		cache:  reportCache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the service clock for testing and for callers that
// pin the reference date explicitly.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// loadSnapshot issues the collaborator fetches concurrently. Tenants
// and payments are the base universe and abort the report when they
// fail; units, deposits, ad-hoc charges, and property names are
// enrichments that degrade to empty.
func (s *Service) loadSnapshot(ctx context.Context) (Snapshot, error) {
	var (
		tenants    []ledger.Tenant
		bank       []ledger.PaymentRecord
		manual     []ledger.PaymentRecord
		units      []ledger.Unit
		deposits   []ledger.Deposit
		charges    []TenantCharge
		properties map[string]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if tenants, err = s.repo.ListTenants(gctx); err != nil {
			return fmt.Errorf("%w: tenants: %v", httpx.ErrUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bank, err = s.repo.ListBankPayments(gctx); err != nil {
			return fmt.Errorf("%w: bank payments: %v", httpx.ErrUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if manual, err = s.repo.ListManualPayments(gctx); err != nil {
			return fmt.Errorf("%w: manual payments: %v", httpx.ErrUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if units, err = s.repo.ListUnits(gctx); err != nil {
			s.logger.Warn("units unavailable, reporting without inventory", slog.Any("error", err))
			units = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if deposits, err = s.repo.ListDeposits(gctx); err != nil {
			s.logger.Warn("deposits unavailable, reporting without deposit column", slog.Any("error", err))
			deposits = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if charges, err = s.repo.ListTenantCharges(gctx); err != nil {
			s.logger.Warn("tenant charges unavailable, reporting rent only", slog.Any("error", err))
			charges = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if properties, err = s.repo.ListProperties(gctx); err != nil {
			s.logger.Warn("property names unavailable", slog.Any("error", err))
			properties = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Tenants:    tenants,
		Payments:   ledger.IndexPaymentsByTenant(ledger.MergePayments(bank, manual)),
		Charges:    make(map[string][]ledger.Charge, len(charges)),
		Units:      units,
		Deposits:   make(map[string]ledger.Deposit, len(deposits)),
		Properties: properties,
	}
	for _, tc := range charges {
		id := ledger.NormalizeTenantRef(tc.TenantID)
		snap.Charges[id] = append(snap.Charges[id], tc.Charge)
	}
	for _, d := range deposits {
		snap.Deposits[ledger.NormalizeTenantRef(d.TenantID)] = d
	}
	return snap, nil
}

// RentRoll builds the rent roll for the filter's month.
func (s *Service) RentRoll(ctx context.Context, f RentRollFilter) (RentRollReport, error) {
	key := fmt.Sprintf("reports:rentroll:%s:%s:%s:%s",
		f.Month.Format("2006-01"), f.PropertyID, f.UnitType, f.Occupancy)
	return runCached(ctx, s, key, func(snap Snapshot) RentRollReport {
		return BuildRentRoll(snap, f)
	})
}

// OverdueRent builds the overdue rent report at the service clock.
func (s *Service) OverdueRent(ctx context.Context, f OverdueFilter) (OverdueReport, error) {
	ref := s.now()
	key := fmt.Sprintf("reports:overdue:%s:%s:%d:%s",
		ref.Format("2006-01-02"), f.PropertyID, f.MinDays, f.TenantStatus)
	return runCached(ctx, s, key, func(snap Snapshot) OverdueReport {
		return BuildOverdueRent(snap, f, ref)
	})
}

// LeaseExpiry builds the lease expiry report at the service clock.
func (s *Service) LeaseExpiry(ctx context.Context, f LeaseExpiryFilter) (LeaseExpiryReport, error) {
	ref := s.now()
	key := fmt.Sprintf("reports:leaseexpiry:%s:%s:%d",
		ref.Format("2006-01-02"), f.PropertyID, f.RangeDays)
	return runCached(ctx, s, key, func(snap Snapshot) LeaseExpiryReport {
		return BuildLeaseExpiry(snap, f, ref)
	})
}

// RentCharges builds the charge schedule for the filter's month.
func (s *Service) RentCharges(ctx context.Context, f RentChargesFilter) (RentChargesReport, error) {
	key := fmt.Sprintf("reports:rentcharges:%s:%s", f.Month.Format("2006-01"), f.PropertyID)
	return runCached(ctx, s, key, func(snap Snapshot) RentChargesReport {
		return BuildRentCharges(snap, f)
	})
}

// TenantStatement builds one tenant's statement over [start, end].
// priorBalance seeds the running balance at start.
func (s *Service) TenantStatement(ctx context.Context, tenantID string, start, end time.Time, priorBalance float64) (ledger.Statement, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return ledger.Statement{}, err
	}
	id := ledger.NormalizeTenantRef(tenantID)
	for _, tenant := range snap.Tenants {
		if tenant.ID != id {
			continue
		}
		return ledger.BuildStatement(tenant, start, end, snap.Payments[id], ledger.StatementOptions{
			PriorBalance: priorBalance,
			AdhocCharges: snap.Charges[id],
		}), nil
	}
	return ledger.Statement{}, fmt.Errorf("%w: tenant %s", httpx.ErrNotFound, tenantID)
}

// runCached answers from the report cache when possible, collapsing
// concurrent identical builds through singleflight.
func runCached[T any](ctx context.Context, s *Service, key string, build func(Snapshot) T) (T, error) {
	var cached T
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("report cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if hit {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		report := build(snap)
		if err := s.cache.Set(ctx, key, report); err != nil {
			s.logger.Warn("report cache write failed", slog.String("key", key), slog.Any("error", err))
		}
		return report, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
