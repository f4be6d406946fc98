package user

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/logger"
	"ediworks-controlplane/services/tenant"
)

// Service serves user and seat projections off the fixture table. It reads
// tenant records only to resolve display names and seat quotas; nothing here
// writes back to the entity store.
type Service struct {
	store *tenant.Store
	calls *calllog.Logger
}

type ServiceParams struct {
	fx.In
	Store *tenant.Store
	Calls *calllog.Logger
}

func NewService(p ServiceParams) *Service {
	return &Service{
		store: p.Store,
		calls: p.Calls,
	}
}

// UsersFor returns the fixture users for a tenant, falling back to the
// default set for tenants without an entry.
func UsersFor(tenantID string) []User {
	if users, ok := usersByTenant[tenantID]; ok {
		return users
	}
	return defaultUsers
}

// ListUsers flattens the fixture table across tenants, joining each user
// with its tenant's display name, then applies the conjunctive filter.
func (s *Service) ListUsers(ctx context.Context, req *ListUsersRequest) (*ListUsersResponse, error) {
	done := s.calls.Begin("GET", "/users", req)

	names, err := s.tenantNames(ctx)
	if err != nil {
		done(nil, err)
		return nil, err
	}

	all := make([]TenantUser, 0)
	for tenantID, users := range usersByTenant {
		name := names[tenantID]
		if name == "" {
			name = tenantID
		}
		for _, u := range users {
			all = append(all, TenantUser{User: u, TenantID: tenantID, TenantName: name})
		}
	}

	filtered := make([]TenantUser, 0, len(all))
	for _, u := range all {
		if userMatches(u, req) {
			filtered = append(filtered, u)
		}
	}

	if req.Limit > 0 && req.Limit < len(filtered) {
		filtered = filtered[:req.Limit]
	}

	resp := &ListUsersResponse{Items: filtered}
	done(resp, nil)
	return resp, nil
}

func userMatches(u TenantUser, req *ListUsersRequest) bool {
	if req.Status != "" && u.Status != req.Status {
		return false
	}
	if req.Role != "" && u.Role != req.Role {
		return false
	}
	if req.TenantID != "" && u.TenantID != req.TenantID {
		return false
	}
	if req.Query != "" {
		q := strings.ToLower(req.Query)
		if !strings.Contains(strings.ToLower(u.Email), q) &&
			!strings.Contains(strings.ToLower(u.TenantName), q) {
			return false
		}
	}
	return true
}

func (s *Service) TenantUsers(ctx context.Context, tenantID string) (*TenantUsersResponse, error) {
	done := s.calls.Begin("GET", "/tenants/"+tenantID+"/users", nil)

	users := UsersFor(tenantID)

	counts := UserCounts{}
	for _, u := range users {
		switch u.Status {
		case Active:
			counts.Active++
		case Invited:
			counts.Invited++
		}
	}

	resp := &TenantUsersResponse{Items: users, Counts: counts}
	done(resp, nil)
	return resp, nil
}

// Seats derives the seat summary: quota from the org profile (25 when the
// tenant has none), used and pending from the fixture users.
func (s *Service) Seats(ctx context.Context, tenantID string) (*SeatSummary, error) {
	done := s.calls.Begin("GET", "/tenants/"+tenantID+"/seats", nil)

	t, err := s.store.Get(ctx, tenantID)
	if err != nil {
		done(nil, err)
		return nil, err
	}

	quota := 25
	if t.OrgProfile != nil && t.OrgProfile.Seats > 0 {
		quota = t.OrgProfile.Seats
	}

	summary := &SeatSummary{Quota: quota}
	for _, u := range UsersFor(tenantID) {
		switch u.Status {
		case Active:
			summary.Used++
		case Invited:
			summary.PendingInvites++
		}
	}

	done(summary, nil)
	return summary, nil
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	done := s.calls.Begin("GET", "/users/stats", nil)

	names, err := s.tenantNames(ctx)
	if err != nil {
		done(nil, err)
		return nil, err
	}

	stats := &StatsResponse{
		ByTenant: make(map[string]TenantCount),
		ByRole:   make(map[string]int),
	}

	for tenantID, users := range usersByTenant {
		name := names[tenantID]
		if name == "" {
			name = tenantID
		}
		stats.ByTenant[tenantID] = TenantCount{TenantName: name, Count: len(users)}
		stats.Total += len(users)

		for _, u := range users {
			switch u.Status {
			case Active:
				stats.Active++
			case Invited:
				stats.Invited++
			case Disabled:
				stats.Suspended++
			}

			role := string(u.Role)
			if role == "" {
				role = string(RoleMember)
			}
			stats.ByRole[role]++
		}
	}

	done(stats, nil)
	return stats, nil
}

// InviteUser, UpdateUser and DeleteUser are accepted and observable through
// the call log, but the fixture table itself never changes.
func (s *Service) InviteUser(ctx context.Context, tenantID string, req *InviteUserRequest) error {
	done := s.calls.Begin("POST", "/tenants/"+tenantID+"/users/invite", req)
	logger.FromContext(ctx).Info("user invited",
		zap.String("tenant_id", tenantID),
		zap.String("email", req.Email),
		zap.String("role", string(req.Role)),
	)
	done(nil, nil)
	return nil
}

func (s *Service) UpdateUser(ctx context.Context, tenantID, userID string, req *UpdateUserRequest) error {
	done := s.calls.Begin("PATCH", "/tenants/"+tenantID+"/users/"+userID, req)
	logger.FromContext(ctx).Info("user updated",
		zap.String("tenant_id", tenantID),
		zap.String("user_id", userID),
	)
	done(nil, nil)
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, tenantID, userID string) error {
	done := s.calls.Begin("DELETE", "/tenants/"+tenantID+"/users/"+userID, nil)
	logger.FromContext(ctx).Info("user deleted",
		zap.String("tenant_id", tenantID),
		zap.String("user_id", userID),
	)
	done(nil, nil)
	return nil
}

func (s *Service) tenantNames(ctx context.Context) (map[string]string, error) {
	tenants, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(tenants))
	for _, t := range tenants {
		names[t.TenantID] = t.TenantName
	}
	return names, nil
}
