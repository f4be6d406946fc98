package usage

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ediworks-controlplane/pkg/config"
	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/pkg/kv"
	"ediworks-controlplane/services/tenant"
	"ediworks-controlplane/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()

	cfg := testutil.NewTestConfig()
	cfg.Analytics.Seed = seed

	return newTestEngineWithConfig(t, cfg)
}

func newTestEngineWithConfig(t *testing.T, cfg *config.Config) *Engine {
	t.Helper()

	return NewEngine(EngineParams{
		Config: cfg,
		Store:  tenant.NewStore(tenant.StoreParams{KV: kv.NewMemory()}),
		Calls:  testutil.NewTestCalls(t),
	})
}

func TestEngine_TenantAnalyticsForbiddenForOthers(t *testing.T) {
	e := newTestEngine(t, 42)

	_, err := e.TenantAnalytics(context.Background(), "globex", "week")
	require.Equal(t, errutil.StatusForbidden, errutil.StatusOf(err))
}

func TestEngine_TenantAnalyticsPinnedWeek(t *testing.T) {
	e := newTestEngine(t, 42)

	resp, err := e.TenantAnalytics(context.Background(), "acme", "week")
	require.NoError(t, err)
	require.Equal(t, "acme", resp.TenantID)
	require.Equal(t, "week", resp.Period)
	require.Equal(t, "2025-09-20", resp.DateRange.From)
	require.Equal(t, "2025-09-26", resp.DateRange.To)
	require.Len(t, resp.Metrics.Compute, 7)
	require.Len(t, resp.Metrics.Storage, 7)
	require.Len(t, resp.Metrics.Egress, 7)
}

func TestEngine_TenantAnalyticsSummaryConsistent(t *testing.T) {
	e := newTestEngine(t, 7)

	resp, err := e.TenantAnalytics(context.Background(), "acme", "week")
	require.NoError(t, err)

	var total, peak int
	var peakDate string
	for _, p := range resp.Metrics.Compute {
		total += p.Value
		if p.Value > peak {
			peak = p.Value
			peakDate = p.Timestamp.Format("2006-01-02")
		}
	}

	require.Equal(t, total, resp.Summary.TotalCompute)
	require.Equal(t, peak, resp.Summary.PeakCompute)
	require.Equal(t, peakDate, resp.Summary.PeakComputeDate)
	require.Equal(t, int(math.Round(float64(total)/7)), resp.Summary.AvgCompute)
}

func TestEngine_TenantAnalyticsValueRanges(t *testing.T) {
	e := newTestEngine(t, 99)

	resp, err := e.TenantAnalytics(context.Background(), "acme", "week")
	require.NoError(t, err)

	for _, p := range resp.Metrics.Compute {
		require.GreaterOrEqual(t, p.Value, 20)
	}
	for _, p := range resp.Metrics.Storage {
		require.GreaterOrEqual(t, p.Value, 420)
		require.Less(t, p.Value, 500)
	}
	for _, p := range resp.Metrics.Egress {
		require.GreaterOrEqual(t, p.Value, 25)
		require.Less(t, p.Value, 60)
	}

	// Saturday and Sunday run well below the weekday baseline ceiling.
	for _, i := range []int{0, 1} {
		require.Less(t, resp.Metrics.Compute[i].Value, 120)
	}
}

func TestEngine_SameSeedReproducesPayload(t *testing.T) {
	a := newTestEngine(t, 1234)
	b := newTestEngine(t, 1234)

	ctx := context.Background()
	respA, err := a.TenantAnalytics(ctx, "acme", "week")
	require.NoError(t, err)
	respB, err := b.TenantAnalytics(ctx, "acme", "week")
	require.NoError(t, err)

	require.Equal(t, respA, respB)
}

func TestEngine_MonthPeriodEndsToday(t *testing.T) {
	e := newTestEngine(t, 5)

	resp, err := e.TenantAnalytics(context.Background(), "acme", "month")
	require.NoError(t, err)
	require.Equal(t, "month", resp.Period)
	require.Len(t, resp.Metrics.Compute, 30)
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.DateRange.To)
}

func TestEngine_Summarize(t *testing.T) {
	e := newTestEngine(t, 5)
	ctx := context.Background()

	resp, err := e.Summarize(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, "acme", resp.TenantID)
	require.Equal(t, "7d", resp.Range)
	for _, key := range []string{"dcv.sessions.active", "dcv.sessions.total", "compute.hours", "storage.gb", "egress.gb"} {
		require.Contains(t, resp.Metrics, key)
	}

	echoed, err := e.Summarize(ctx, "globex", "1d")
	require.NoError(t, err)
	require.Equal(t, "globex", echoed.TenantID)
	require.Equal(t, "1d", echoed.Range)
}

func TestEngine_SeriesShape(t *testing.T) {
	e := newTestEngine(t, 5)

	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	points, err := e.Series(context.Background(), &SeriesRequest{Metric: "compute", From: from, To: to})
	require.NoError(t, err)
	require.Len(t, points, 24)
	require.Equal(t, from, points[0].TS)
	for i, p := range points {
		require.GreaterOrEqual(t, p.Value, 0)
		require.Less(t, p.Value, 100)
		if i > 0 {
			require.True(t, p.TS.After(points[i-1].TS))
		}
	}
}

func TestEngine_OverviewScalesWithTenantCount(t *testing.T) {
	e := newTestEngine(t, 5)

	resp, err := e.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, resp.TotalTenants)
	require.GreaterOrEqual(t, resp.TotalSessions, 5*20)
	require.GreaterOrEqual(t, resp.TotalCompute, 5*50)
	require.GreaterOrEqual(t, resp.TotalStorage, 5*100)
	require.GreaterOrEqual(t, resp.TotalEgress, 5*30)
}

func TestEngine_UserStats(t *testing.T) {
	e := newTestEngine(t, 5)

	stats, err := e.UserStats(context.Background(), "acme")
	require.NoError(t, err)
	require.Equal(t, 5, stats.TotalUsers)
	require.Equal(t, 3, stats.ActiveUsers)
	require.Len(t, stats.UserBreakdown, 5)

	var compute, storage, egress int
	for _, row := range stats.UserBreakdown {
		compute += row.ComputeHours
		storage += row.StorageGB
		egress += row.EgressGB
	}
	require.Equal(t, compute, stats.TotalComputeHours)
	require.Equal(t, storage, stats.TotalStorageGB)
	require.Equal(t, egress, stats.TotalEgressGB)
}

func TestEngine_UserHistory(t *testing.T) {
	e := newTestEngine(t, 5)
	ctx := context.Background()

	hist, err := e.UserHistory(ctx, "u-acme-001", "7d")
	require.NoError(t, err)
	require.Equal(t, "7d", hist.Range)
	require.Len(t, hist.DailyStats, 7)
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), hist.DailyStats[6].Date)

	var sessions int
	for _, day := range hist.DailyStats {
		sessions += day.Sessions
	}
	require.Equal(t, sessions, hist.TotalSessions)

	// Unknown ranges fall back to 30 days.
	fallback, err := e.UserHistory(ctx, "u-acme-001", "1y")
	require.NoError(t, err)
	require.Equal(t, "30d", fallback.Range)
	require.Len(t, fallback.DailyStats, 30)
}
