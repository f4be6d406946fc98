package usage

import "time"

// Summary is the coarse usage snapshot backing the dashboard header. Metric
// keys mirror the entitlement namespace so callers can line the two up.
type Summary struct {
	TenantID  string             `json:"tenantId"`
	Range     string             `json:"range"`
	Metrics   map[string]float64 `json:"metrics"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// SeriesPoint is one sample of a generic metric series.
type SeriesPoint struct {
	TS    time.Time `json:"ts"`
	Value int       `json:"value"`
}

type SeriesRequest struct {
	TenantID string    `json:"tenantId,omitempty"`
	Metric   string    `json:"metric"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Step     string    `json:"step,omitempty"`
}

// Overview aggregates synthetic totals across every stored tenant.
type Overview struct {
	TotalSessions int `json:"totalSessions"`
	TotalCompute  int `json:"totalCompute"`
	TotalStorage  int `json:"totalStorage"`
	TotalEgress   int `json:"totalEgress"`
	TotalTenants  int `json:"totalTenants"`
}

// DailyPoint is one day of a tenant analytics series. Date is the display
// label, Timestamp the machine-readable instant.
type DailyPoint struct {
	Date      string    `json:"date"`
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Metrics struct {
	Compute []DailyPoint `json:"compute"`
	Storage []DailyPoint `json:"storage"`
	Egress  []DailyPoint `json:"egress"`
}

type AnalyticsSummary struct {
	TotalCompute    int    `json:"totalCompute"`
	TotalStorage    int    `json:"totalStorage"`
	TotalEgress     int    `json:"totalEgress"`
	AvgCompute      int    `json:"avgCompute"`
	AvgStorage      int    `json:"avgStorage"`
	AvgEgress       int    `json:"avgEgress"`
	PeakCompute     int    `json:"peakCompute"`
	PeakComputeDate string `json:"peakComputeDate"`
}

// TenantAnalytics is the detailed weekly report for the distinguished tenant.
type TenantAnalytics struct {
	TenantID  string           `json:"tenantId"`
	Period    string           `json:"period"`
	DateRange DateRange        `json:"dateRange"`
	Metrics   Metrics          `json:"metrics"`
	Summary   AnalyticsSummary `json:"summary"`
}

// UserUsage is one row of the per-tenant user breakdown.
type UserUsage struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	ComputeHours int       `json:"computeHours"`
	StorageGB    int       `json:"storageGB"`
	EgressGB     int       `json:"egressGB"`
	LastActivity time.Time `json:"lastActivity"`
}

type UserStats struct {
	TotalUsers        int         `json:"totalUsers"`
	ActiveUsers       int         `json:"activeUsers"`
	TotalComputeHours int         `json:"totalComputeHours"`
	TotalStorageGB    int         `json:"totalStorageGB"`
	TotalEgressGB     int         `json:"totalEgressGB"`
	UserBreakdown     []UserUsage `json:"userBreakdown"`
}

// DailyUsage is one day of a user's history. Egress carries a fractional
// floor so light days still register.
type DailyUsage struct {
	Date         string  `json:"date"`
	Sessions     int     `json:"sessions"`
	ComputeHours int     `json:"computeHours"`
	StorageGB    int     `json:"storageGB"`
	EgressGB     float64 `json:"egressGB"`
}

type UserHistory struct {
	UserID            string       `json:"userId"`
	Range             string       `json:"range"`
	TotalSessions     int          `json:"totalSessions"`
	TotalComputeHours int          `json:"totalComputeHours"`
	TotalStorageGB    int          `json:"totalStorageGB"`
	TotalEgressGB     float64      `json:"totalEgressGB"`
	DailyStats        []DailyUsage `json:"dailyStats"`
}
