package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/services/catalog"
	"ediworks-controlplane/services/tenant"
)

func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.plans.ListPlans(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": plans})
}

func (h *Handler) GetPlan(c *gin.Context) {
	plan, err := h.plans.GetPlan(c.Request.Context(), catalog.PlanID(c.Param("planId")))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) ListTenants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	req := &tenant.ListTenantsRequest{
		Type:           tenant.TenantType(c.Query("type")),
		Plan:           catalog.PlanID(c.Query("plan")),
		Status:         tenant.Status(c.Query("status")),
		IsolationModel: catalog.IsolationModel(c.Query("isolationModel")),
		Region:         c.Query("region"),
		Query:          c.Query("q"),
		Limit:          limit,
	}

	resp, err := h.tenants.ListTenants(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTenant(c *gin.Context) {
	t, err := h.tenants.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) CreateTenant(c *gin.Context) {
	var req tenant.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	if details := validateCreate(&req); len(details) > 0 {
		c.Error(errutil.ValidationFailed("invalid tenant request", errutil.WithDetails(details...)))
		return
	}

	resp, err := h.tenants.CreateTenant(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// validateCreate enforces the caller-side contract: the core accepts any
// well-formed request, so required fields are checked here.
func validateCreate(req *tenant.CreateTenantRequest) []errutil.Detail {
	var details []errutil.Detail
	if req.TenantName == "" {
		details = append(details, errutil.Detail{Field: "tenantName", Message: "required"})
	}
	if req.Contact.Email == "" {
		details = append(details, errutil.Detail{Field: "contact.email", Message: "required"})
	}
	if req.TenantType == tenant.Org && (req.OrgProfile == nil || req.OrgProfile.LegalEntity == "") {
		details = append(details, errutil.Detail{Field: "orgProfile.legalEntity", Message: "required for ORG tenants"})
	}
	return details
}

func (h *Handler) UpdateTenant(c *gin.Context) {
	var req tenant.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	updated, err := h.tenants.UpdateTenant(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdateSeats(c *gin.Context) {
	var req tenant.UpdateSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}
	if req.Quota <= 0 {
		c.Error(errutil.ValidationFailed("invalid seat request",
			errutil.WithDetails(errutil.Detail{Field: "quota", Message: "must be positive"})))
		return
	}

	if err := h.tenants.UpdateSeats(c.Request.Context(), c.Param("id"), &req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) TenantEvents(c *gin.Context) {
	resp, err := h.tenants.LifecycleEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ProvisioningTasks(c *gin.Context) {
	resp, err := h.tenants.ProvisioningTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEntitlements(c *gin.Context) {
	var req tenant.UpdateEntitlementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	resp, err := h.tenants.UpdateEntitlements(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SuspendTenant(c *gin.Context) {
	var req tenant.SuspendTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	if err := h.tenants.SuspendTenant(c.Request.Context(), c.Param("id"), &req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResumeTenant(c *gin.Context) {
	if err := h.tenants.ResumeTenant(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteTenant(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("preserveDataDays"))
	req := &tenant.DeleteTenantRequest{PreserveDataDays: days}

	if err := h.tenants.DeleteTenant(c.Request.Context(), c.Param("id"), req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetDomain(c *gin.Context) {
	info, err := h.tenants.GetDomain(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) CreateDomain(c *gin.Context) {
	var req tenant.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}
	if req.Subdomain == "" {
		c.Error(errutil.ValidationFailed("invalid domain request",
			errutil.WithDetails(errutil.Detail{Field: "subdomain", Message: "required"})))
		return
	}

	resp, err := h.tenants.CreateDomain(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) DeleteDomain(c *gin.Context) {
	if err := h.tenants.DeleteDomain(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
