package usage

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/fx"

	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/config"
	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/services/tenant"
	"ediworks-controlplane/services/user"
)

// baseCompute is the daily compute-hours baseline for the distinguished
// tenant's weekly report.
const baseCompute = 145

// reportWeekStart pins the detailed weekly report to a fixed period so the
// report reads the same across reloads of the same seed.
var reportWeekStart = time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)

// Engine synthesizes usage data. Nothing here is measured: every series is
// generated from the injected rand source, so a fixed seed reproduces the
// full payload.
type Engine struct {
	distinguished string
	store         *tenant.Store
	calls         *calllog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

type EngineParams struct {
	fx.In

	Config *config.Config
	Store  *tenant.Store
	Calls  *calllog.Logger
}

func NewEngine(p EngineParams) *Engine {
	seed := p.Config.Analytics.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		distinguished: p.Config.Analytics.Tenant,
		store:         p.Store,
		calls:         p.Calls,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

// Summarize returns the coarse usage snapshot. The metric values are a fixed
// fixture; only tenant and range echo the request.
func (e *Engine) Summarize(ctx context.Context, tenantID, rng string) (*Summary, error) {
	done := e.calls.Begin("GET", "/usage", map[string]string{"tenantId": tenantID, "range": rng})

	if tenantID == "" {
		tenantID = e.distinguished
	}
	if rng == "" {
		rng = "7d"
	}

	resp := &Summary{
		TenantID: tenantID,
		Range:    rng,
		Metrics: map[string]float64{
			"dcv.sessions.active": 12,
			"dcv.sessions.total":  348,
			"compute.hours":       1240,
			"storage.gb":          482,
			"egress.gb":           96,
		},
		UpdatedAt: time.Now().UTC(),
	}
	done(resp, nil)
	return resp, nil
}

// Series samples a generic metric between two instants with a fixed point
// count, regardless of the requested step.
func (e *Engine) Series(ctx context.Context, req *SeriesRequest) ([]SeriesPoint, error) {
	done := e.calls.Begin("GET", "/usage/series", req)

	const steps = 24
	span := req.To.Sub(req.From)
	points := make([]SeriesPoint, 0, steps)
	for i := 0; i < steps; i++ {
		ts := req.From.Add(span / steps * time.Duration(i))
		points = append(points, SeriesPoint{TS: ts, Value: e.intn(100)})
	}

	done(points, nil)
	return points, nil
}

// Overview scales random per-tenant ranges by the stored tenant count.
func (e *Engine) Overview(ctx context.Context) (*Overview, error) {
	done := e.calls.Begin("GET", "/usage/analytics", nil)

	tenants, err := e.store.List(ctx)
	if err != nil {
		done(nil, err)
		return nil, err
	}

	n := len(tenants)
	resp := &Overview{
		TotalSessions: n * (e.intn(50) + 20),
		TotalCompute:  n * (e.intn(100) + 50),
		TotalStorage:  n * (e.intn(200) + 100),
		TotalEgress:   n * (e.intn(80) + 30),
		TotalTenants:  n,
	}
	done(resp, nil)
	return resp, nil
}

// TenantAnalytics builds the detailed report. Only the distinguished tenant
// may read it; everyone else gets FORBIDDEN with no data. The weekly period
// is pinned, the monthly one ends today.
func (e *Engine) TenantAnalytics(ctx context.Context, tenantID, period string) (*TenantAnalytics, error) {
	done := e.calls.Begin("GET", "/usage/analytics/"+tenantID, map[string]string{"period": period})

	if tenantID != e.distinguished {
		err := errutil.Forbidden("access denied for tenant analytics")
		done(nil, err)
		return nil, err
	}

	days := 7
	start := reportWeekStart
	if period == "month" {
		days = 30
		start = time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
	} else {
		period = "week"
	}

	metrics, summary := e.generate(start, days)

	resp := &TenantAnalytics{
		TenantID: tenantID,
		Period:   period,
		DateRange: DateRange{
			From: start.Format("2006-01-02"),
			To:   start.AddDate(0, 0, days-1).Format("2006-01-02"),
		},
		Metrics: metrics,
		Summary: summary,
	}
	done(resp, nil)
	return resp, nil
}

// generate produces the daily series. Weekends run at 35-60% of baseline;
// business days follow per-weekday curves with a Tue/Wed batch boost.
func (e *Engine) generate(start time.Time, days int) (Metrics, AnalyticsSummary) {
	m := Metrics{
		Compute: make([]DailyPoint, 0, days),
		Storage: make([]DailyPoint, 0, days),
		Egress:  make([]DailyPoint, 0, days),
	}

	var s AnalyticsSummary
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		var mult float64
		switch date.Weekday() {
		case time.Saturday, time.Sunday:
			mult = 0.35 + e.float64()*0.25
		case time.Monday:
			mult = 1.25 + math.Sin(float64(i)*0.3)*0.15
		case time.Tuesday:
			mult = (1.45 + math.Sin(float64(i)*0.2)*0.25) * 1.15
		case time.Wednesday:
			mult = (1.35 + math.Sin(float64(i)*0.25)*0.2) * 1.15
		case time.Thursday:
			mult = 1.15 + math.Sin(float64(i)*0.2)*0.15
		case time.Friday:
			mult = 1.05 + math.Sin(float64(i)*0.15)*0.1
		}

		compute := int(math.Round(baseCompute*mult + (e.float64()*30 - 15)))
		if compute < 20 {
			compute = 20
		}
		if compute > s.PeakCompute {
			s.PeakCompute = compute
			s.PeakComputeDate = date.Format("2006-01-02")
		}

		storage := e.intn(80) + 420
		egress := e.intn(35) + 25

		label := date.Format("Jan 2")
		m.Compute = append(m.Compute, DailyPoint{Date: label, Value: compute, Timestamp: date})
		m.Storage = append(m.Storage, DailyPoint{Date: label, Value: storage, Timestamp: date})
		m.Egress = append(m.Egress, DailyPoint{Date: label, Value: egress, Timestamp: date})

		s.TotalCompute += compute
		s.TotalStorage += storage
		s.TotalEgress += egress
	}

	s.AvgCompute = int(math.Round(float64(s.TotalCompute) / float64(days)))
	s.AvgStorage = int(math.Round(float64(s.TotalStorage) / float64(days)))
	s.AvgEgress = int(math.Round(float64(s.TotalEgress) / float64(days)))
	return m, s
}

// UserStats rolls synthetic per-user consumption up to tenant totals.
func (e *Engine) UserStats(ctx context.Context, tenantID string) (*UserStats, error) {
	done := e.calls.Begin("GET", "/usage/analytics/"+tenantID+"/users", nil)

	now := time.Now().UTC()
	stats := &UserStats{UserBreakdown: make([]UserUsage, 0)}
	for _, u := range user.UsersFor(tenantID) {
		row := UserUsage{
			UserID:       u.UserID,
			Email:        u.Email,
			Role:         string(u.Role),
			Status:       string(u.Status),
			ComputeHours: e.intn(100) + 10,
			StorageGB:    e.intn(50) + 5,
			EgressGB:     e.intn(20) + 2,
			LastActivity: now.Add(-time.Duration(e.float64() * float64(7*24*time.Hour))),
		}
		stats.UserBreakdown = append(stats.UserBreakdown, row)
		stats.TotalUsers++
		if u.Status == user.Active {
			stats.ActiveUsers++
		}
		stats.TotalComputeHours += row.ComputeHours
		stats.TotalStorageGB += row.StorageGB
		stats.TotalEgressGB += row.EgressGB
	}

	done(stats, nil)
	return stats, nil
}

// UserHistory generates a daily history window ending today.
func (e *Engine) UserHistory(ctx context.Context, userID, rng string) (*UserHistory, error) {
	done := e.calls.Begin("GET", "/users/"+userID+"/usage", map[string]string{"range": rng})

	var days int
	switch rng {
	case "7d":
		days = 7
	case "90d":
		days = 90
	default:
		rng = "30d"
		days = 30
	}

	now := time.Now().UTC()
	hist := &UserHistory{UserID: userID, Range: rng, DailyStats: make([]DailyUsage, 0, days)}
	for i := days - 1; i >= 0; i-- {
		day := DailyUsage{
			Date:         now.AddDate(0, 0, -i).Format("2006-01-02"),
			Sessions:     e.intn(8) + 1,
			ComputeHours: e.intn(12) + 2,
			StorageGB:    e.intn(5) + 1,
			EgressGB:     float64(e.intn(3)) + 0.5,
		}
		hist.DailyStats = append(hist.DailyStats, day)
		hist.TotalSessions += day.Sessions
		hist.TotalComputeHours += day.ComputeHours
		hist.TotalStorageGB += day.StorageGB
		hist.TotalEgressGB += day.EgressGB
	}

	done(hist, nil)
	return hist, nil
}
