package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/services/user"
)

func (h *Handler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	req := &user.ListUsersRequest{
		Status:   user.Status(c.Query("status")),
		Role:     user.Role(c.Query("role")),
		TenantID: c.Query("tenantId"),
		Query:    c.Query("q"),
		Limit:    limit,
	}

	resp, err := h.users.ListUsers(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UserStats(c *gin.Context) {
	resp, err := h.users.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TenantUsers(c *gin.Context) {
	resp, err := h.users.TenantUsers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Seats(c *gin.Context) {
	resp, err := h.users.Seats(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) InviteUser(c *gin.Context) {
	var req user.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}
	if req.Email == "" {
		c.Error(errutil.ValidationFailed("invalid invite request",
			errutil.WithDetails(errutil.Detail{Field: "email", Message: "required"})))
		return
	}

	if err := h.users.InviteUser(c.Request.Context(), c.Param("id"), &req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errutil.BadRequest("invalid request body", errutil.WithErr(err)))
		return
	}

	if err := h.users.UpdateUser(c.Request.Context(), c.Param("id"), c.Param("userId"), &req); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.users.DeleteUser(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
