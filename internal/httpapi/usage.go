package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/services/usage"
)

func (h *Handler) UsageSummary(c *gin.Context) {
	resp, err := h.usage.Summarize(c.Request.Context(), c.Query("tenantId"), c.Query("range"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UsageSeries(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.Error(errutil.BadRequest("invalid from timestamp", errutil.WithErr(err)))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.Error(errutil.BadRequest("invalid to timestamp", errutil.WithErr(err)))
		return
	}

	req := &usage.SeriesRequest{
		TenantID: c.Query("tenantId"),
		Metric:   c.Query("metric"),
		From:     from,
		To:       to,
		Step:     c.Query("step"),
	}

	points, serr := h.usage.Series(c.Request.Context(), req)
	if serr != nil {
		c.Error(serr)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) UsageOverview(c *gin.Context) {
	resp, err := h.usage.Overview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TenantAnalytics(c *gin.Context) {
	resp, err := h.usage.TenantAnalytics(c.Request.Context(), c.Param("id"), c.Query("period"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TenantUserStats(c *gin.Context) {
	resp, err := h.usage.UserStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UserUsageHistory(c *gin.Context) {
	resp, err := h.usage.UserHistory(c.Request.Context(), c.Param("id"), c.Query("range"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
