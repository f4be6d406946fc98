// Package httpapi is the thin HTTP surface over the simulated backend. It
// owns request decoding and the caller-side validation; all semantics live
// in the service packages.
package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/middleware"
	"ediworks-controlplane/services/audit"
	"ediworks-controlplane/services/catalog"
	"ediworks-controlplane/services/tenant"
	"ediworks-controlplane/services/usage"
	"ediworks-controlplane/services/user"
)

type Handler struct {
	plans   *catalog.Service
	tenants *tenant.Service
	store   *tenant.Store
	users   *user.Service
	audit   *audit.Service
	usage   *usage.Engine
	calls   *calllog.Logger
}

type HandlerParams struct {
	fx.In

	Plans   *catalog.Service
	Tenants *tenant.Service
	Store   *tenant.Store
	Users   *user.Service
	Audit   *audit.Service
	Usage   *usage.Engine
	Calls   *calllog.Logger
}

func NewHandler(p HandlerParams) *Handler {
	return &Handler{
		plans:   p.Plans,
		tenants: p.Tenants,
		store:   p.Store,
		users:   p.Users,
		audit:   p.Audit,
		usage:   p.Usage,
		calls:   p.Calls,
	}
}

// ProvideRouter builds the gin engine with every route registered.
func ProvideRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Error())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/plans", h.ListPlans)
	r.GET("/plans/:planId", h.GetPlan)

	r.GET("/tenants", h.ListTenants)
	r.POST("/tenants", h.CreateTenant)
	r.GET("/tenants/:id", h.GetTenant)
	r.PATCH("/tenants/:id", h.UpdateTenant)
	r.DELETE("/tenants/:id", h.DeleteTenant)
	r.PATCH("/tenants/:id/entitlements", h.UpdateEntitlements)
	r.PATCH("/tenants/:id/seats", h.UpdateSeats)
	r.POST("/tenants/:id/actions/suspend", h.SuspendTenant)
	r.POST("/tenants/:id/actions/resume", h.ResumeTenant)
	r.GET("/tenants/:id/events", h.TenantEvents)
	r.GET("/tenants/:id/tasks", h.ProvisioningTasks)

	r.GET("/tenants/:id/domain", h.GetDomain)
	r.POST("/tenants/:id/domain", h.CreateDomain)
	r.DELETE("/tenants/:id/domain", h.DeleteDomain)

	r.GET("/tenants/:id/users", h.TenantUsers)
	r.GET("/tenants/:id/seats", h.Seats)
	r.POST("/tenants/:id/users/invite", h.InviteUser)
	r.PATCH("/tenants/:id/users/:userId", h.UpdateUser)
	r.DELETE("/tenants/:id/users/:userId", h.DeleteUser)

	r.GET("/users", h.ListUsers)
	r.GET("/users/stats", h.UserStats)
	r.GET("/users/:id/usage", h.UserUsageHistory)

	r.GET("/usage", h.UsageSummary)
	r.GET("/usage/series", h.UsageSeries)
	r.GET("/usage/analytics", h.UsageOverview)
	r.GET("/usage/analytics/:id", h.TenantAnalytics)
	r.GET("/usage/analytics/:id/users", h.TenantUserStats)

	r.GET("/audit", h.AuditLog)

	r.GET("/auth/me", h.CurrentUser)
	r.PUT("/auth/me", h.SetCurrentUser)
	r.DELETE("/auth/me", h.ClearCurrentUser)

	r.POST("/reset", h.Reset)

	r.GET("/calls", h.Calls)
	r.DELETE("/calls", h.ClearCalls)
	r.GET("/calls/summary", h.CallSummary)
	r.GET("/calls/export", h.ExportCalls)
	r.PUT("/calls/enabled", h.SetCallLogging)

	return r
}

var Module = fx.Module("httpapi",
	fx.Provide(
		NewHandler,
		ProvideRouter,
	),
)
