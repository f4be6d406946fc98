package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/services/audit"
	"ediworks-controlplane/services/tenant"
)

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) AuditLog(c *gin.Context) {
	req := &audit.QueryRequest{
		TenantID: c.Query("tenantId"),
		Actor:    c.Query("actor"),
		Action:   c.Query("action"),
	}

	resp, err := h.audit.Query(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CurrentUser(c *gin.Context) {
	u, err := h.store.CurrentUser(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if u == nil {
		c.Error(errutil.NotFound("no current user"))
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) SetCurrentUser(c *gin.Context) {
	var u tenant.AuthUser
	if err := c.ShouldBindJSON(&u); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	if err := h.store.SetCurrentUser(c.Request.Context(), &u); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) ClearCurrentUser(c *gin.Context) {
	if err := h.store.ClearCurrentUser(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset clears all persisted state; the next read reseeds fixtures.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.store.Reset(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Calls(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.calls.Entries()})
}

func (h *Handler) ClearCalls(c *gin.Context) {
	h.calls.Clear()
	c.Status(http.StatusNoContent)
}

func (h *Handler) CallSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.calls.Summarize())
}

func (h *Handler) ExportCalls(c *gin.Context) {
	out, err := h.calls.Export()
	if err != nil {
		c.Error(errutil.Internal("failed to export call log", errutil.WithErr(err)))
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(out))
}

func (h *Handler) SetCallLogging(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}
	h.calls.SetEnabled(req.Enabled)
	c.JSON(http.StatusOK, gin.H{"enabled": h.calls.Enabled()})
}
