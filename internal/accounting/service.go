package accounting

import (
	"context"
	"fmt"

	"github.com/propfolio/propfolio/internal/platform/httpx"
)

// Service runs the accounting projections over journal snapshots.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

func (s *Service) reduced(ctx context.Context, f Filter) ([]Account, []JournalLine, []AccountBalance, error) {
	accounts, lines, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: journal: %v", httpx.ErrUnavailable, err)
	}
	filtered := FilterLines(lines, f)
	return accounts, filtered, ReduceBalances(accounts, filtered), nil
}

// TrialBalance returns the raw per-account debit/credit view.
func (s *Service) TrialBalance(ctx context.Context, f Filter) (TrialBalance, error) {
	_, _, balances, err := s.reduced(ctx, f)
	if err != nil {
		return TrialBalance{}, err
	}
	return BuildTrialBalance(balances), nil
}

// BalanceSheet returns the sectioned assets/liabilities/equity view.
func (s *Service) BalanceSheet(ctx context.Context, f Filter) (BalanceSheet, error) {
	_, _, balances, err := s.reduced(ctx, f)
	if err != nil {
		return BalanceSheet{}, err
	}
	return BuildBalanceSheet(balances), nil
}

// Cashflow returns the by-activity view.
func (s *Service) Cashflow(ctx context.Context, f Filter) (Cashflow, error) {
	_, _, balances, err := s.reduced(ctx, f)
	if err != nil {
		return Cashflow{}, err
	}
	return BuildCashflow(balances), nil
}

// GeneralLedger returns the flat chronological view.
func (s *Service) GeneralLedger(ctx context.Context, f Filter) (GeneralLedger, error) {
	accounts, filtered, _, err := s.reduced(ctx, f)
	if err != nil {
		return GeneralLedger{}, err
	}
	return BuildGeneralLedger(accounts, filtered), nil
}
