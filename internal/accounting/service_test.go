package accounting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/propfolio/propfolio/internal/platform/httpx"
	_ "github.com/propfolio/propfolio/testing"
)

type memoryJournalRepo struct {
	accounts []Account
	lines    []JournalLine
	fail     bool
	calls    int
}

func (m *memoryJournalRepo) Snapshot(ctx context.Context) ([]Account, []JournalLine, error) {
	m.calls++
	if m.fail {
		return nil, nil, errors.New("connection refused")
	}
	return m.accounts, m.lines, nil
}

func TestServiceProjectionsShareOneFilter(t *testing.T) {
	repo := &memoryJournalRepo{accounts: fixtureAccounts(), lines: fixtureLines()}
	svc := NewService(repo)
	ctx := context.Background()
	f := Filter{From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)}

	tb, err := svc.TrialBalance(ctx, f)
	require.NoError(t, err)
	require.Equal(t, tb.TotalDebit, tb.TotalCredit)

	bs, err := svc.BalanceSheet(ctx, f)
	require.NoError(t, err)
	require.Len(t, bs.Assets.Accounts, 2)

	cf, err := svc.Cashflow(ctx, f)
	require.NoError(t, err)
	require.Equal(t, 11349.50, cf.EndingCash)

	gl, err := svc.GeneralLedger(ctx, f)
	require.NoError(t, err)
	require.Equal(t, tb.TotalDebit, gl.TotalDebit)
	require.Equal(t, tb.TotalCredit, gl.TotalCredit)
}

func TestServicePropertyFilterFlowsThrough(t *testing.T) {
	repo := &memoryJournalRepo{accounts: fixtureAccounts(), lines: fixtureLines()}
	svc := NewService(repo)

	gl, err := svc.GeneralLedger(context.Background(), Filter{PropertyID: "p-2"})
	require.NoError(t, err)
	require.Len(t, gl.Rows, 4)
	for _, row := range gl.Rows {
		require.Equal(t, "p-2", row.Line.PropertyID)
	}
}

func TestServiceWrapsJournalFailure(t *testing.T) {
	repo := &memoryJournalRepo{fail: true}
	svc := NewService(repo)

	_, err := svc.TrialBalance(context.Background(), Filter{})
	require.ErrorIs(t, err, httpx.ErrUnavailable)

	_, err = svc.Cashflow(context.Background(), Filter{})
	require.ErrorIs(t, err, httpx.ErrUnavailable)
}
