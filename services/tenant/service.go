package tenant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/errutil"
	"ediworks-controlplane/pkg/gen"
	"ediworks-controlplane/pkg/logger"
	"ediworks-controlplane/services/catalog"
	"ediworks-controlplane/services/domain"
)

// Service implements the tenant operations of the control plane. The state
// machine it drives is PROVISIONING→READY, READY⇄SUSPENDED, any→removed;
// suspend and resume overwrite status unconditionally, so the only guard on
// a removed tenant is that its identifier no longer resolves.
type Service struct {
	store *Store
	plans *catalog.Service
	namer *domain.Namer
	calls *calllog.Logger
}

type ServiceParams struct {
	fx.In
	Store *Store
	Plans *catalog.Service
	Namer *domain.Namer
	Calls *calllog.Logger
}

func NewService(p ServiceParams) *Service {
	return &Service{
		store: p.Store,
		plans: p.Plans,
		namer: p.Namer,
		calls: p.Calls,
	}
}

// ListTenants applies the conjunctive filter, then the limit. Filtering is
// pure: the stored collection is never mutated.
func (s *Service) ListTenants(ctx context.Context, req *ListTenantsRequest) (*ListTenantsResponse, error) {
	done := s.calls.Begin("GET", "/tenants", req)

	tenants, err := s.store.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list tenants", zap.Error(err))
		done(nil, err)
		return nil, err
	}

	filtered := make([]*Tenant, 0, len(tenants))
	for _, t := range tenants {
		if matches(t, req) {
			filtered = append(filtered, t)
		}
	}

	if req.Limit > 0 && req.Limit < len(filtered) {
		filtered = filtered[:req.Limit]
	}

	resp := &ListTenantsResponse{Items: filtered}
	done(resp, nil)
	return resp, nil
}

func matches(t *Tenant, req *ListTenantsRequest) bool {
	if req.Type != "" && t.TenantType != req.Type {
		return false
	}
	if req.Plan != "" && t.Plan != req.Plan {
		return false
	}
	if req.Status != "" && t.Status != req.Status {
		return false
	}
	if req.IsolationModel != "" && t.IsolationModel != req.IsolationModel {
		return false
	}
	if req.Region != "" && t.Region != req.Region {
		return false
	}
	if req.Query != "" {
		q := strings.ToLower(req.Query)
		if !strings.Contains(strings.ToLower(t.TenantName), q) &&
			!strings.Contains(strings.ToLower(t.TenantID), q) &&
			!contactMatches(t.Contacts, q) {
			return false
		}
	}
	return true
}

func contactMatches(contacts []Contact, q string) bool {
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Email), q) {
			return true
		}
	}
	return false
}

func (s *Service) GetTenant(ctx context.Context, tenantID string) (*Tenant, error) {
	done := s.calls.Begin("GET", "/tenants/"+tenantID, nil)

	t, err := s.store.Get(ctx, tenantID)
	if err != nil {
		logger.FromContext(ctx).Warn("tenant not found", zap.String("tenant_id", tenantID))
		done(nil, err)
		return nil, err
	}

	done(t, nil)
	return t, nil
}

// CreateTenant accepts any well-formed request; required-field validation is
// the caller's responsibility. The new record is prepended so newest-first
// ordering holds without an explicit sort.
func (s *Service) CreateTenant(ctx context.Context, req *CreateTenantRequest) (*CreateTenantResponse, error) {
	done := s.calls.Begin("POST", "/tenants", req)

	zapLog := logger.FromContext(ctx)

	tenants, err := s.store.List(ctx)
	if err != nil {
		zapLog.Error("failed to load tenants for create", zap.Error(err))
		done(nil, err)
		return nil, err
	}

	now := time.Now().UTC()
	slugName := slug.Make(req.TenantName)

	hostname := req.Domain
	if hostname == "" && req.TenantType == Org {
		hostname = s.namer.Derive(req.TenantName, req.Plan)
	}

	labels := req.Labels
	if labels == nil {
		labels = map[string]string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	newTenant := &Tenant{
		TenantID:       fmt.Sprintf("t-%s-%s", slugName, gen.Suffix(4)),
		TenantType:     req.TenantType,
		TenantName:     req.TenantName,
		Plan:           req.Plan,
		IsolationModel: req.IsolationModel,
		Region:         req.Region,
		Domain:         hostname,
		Entitlements:   s.plans.EntitlementDefaults(req.Plan),
		Labels:         labels,
		Tags:           tags,
		Contacts:       []Contact{{Email: req.Contact.Email, Type: ContactAdmin}},
		Status:         Provisioning,
		CreatedAt:      now,
		UpdatedAt:      now,
		OrgProfile:     req.OrgProfile,
	}

	tenants = append([]*Tenant{newTenant}, tenants...)
	if err := s.store.Put(ctx, tenants); err != nil {
		zapLog.Error("failed to persist new tenant", zap.Error(err))
		done(nil, err)
		return nil, err
	}

	zapLog.Info("tenant created",
		zap.String("tenant_id", newTenant.TenantID),
		zap.String("plan", string(newTenant.Plan)),
	)

	resp := &CreateTenantResponse{
		TenantID: newTenant.TenantID,
		Status:   newTenant.Status,
		Plan:     newTenant.Plan,
	}
	done(resp, nil)
	return resp, nil
}

// UpdateTenant applies a generic partial update. Identity, plan, status and
// entitlements have dedicated operations and are not touched here.
func (s *Service) UpdateTenant(ctx context.Context, tenantID string, req *UpdateTenantRequest) (*Tenant, error) {
	done := s.calls.Begin("PATCH", "/tenants/"+tenantID, req)

	t, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		if req.TenantName != nil {
			t.TenantName = *req.TenantName
		}
		if req.Region != nil {
			t.Region = *req.Region
		}
		if req.Labels != nil {
			t.Labels = req.Labels
		}
		if req.Tags != nil {
			t.Tags = req.Tags
		}
		if req.Contacts != nil {
			t.Contacts = req.Contacts
		}
		if req.OrgProfile != nil {
			t.OrgProfile = req.OrgProfile
		}
	})
	if err != nil {
		done(nil, err)
		return nil, err
	}

	done(t, nil)
	return t, nil
}

// UpdateSeats overwrites the seat quota on the org profile, creating one for
// tenants that never had it.
func (s *Service) UpdateSeats(ctx context.Context, tenantID string, req *UpdateSeatsRequest) error {
	done := s.calls.Begin("PATCH", "/tenants/"+tenantID+"/seats", req)

	_, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		if t.OrgProfile == nil {
			t.OrgProfile = &OrgProfile{}
		}
		t.OrgProfile.Seats = req.Quota
	})
	if err != nil {
		done(nil, err)
		return err
	}

	logger.FromContext(ctx).Info("seat quota updated",
		zap.String("tenant_id", tenantID),
		zap.Int("quota", req.Quota),
	)
	done(nil, nil)
	return nil
}

// UpdateEntitlements merges only the provided entitlement keys; keys absent
// from the patch are untouched. Plan and isolation model are replaced
// wholesale when present.
func (s *Service) UpdateEntitlements(ctx context.Context, tenantID string, req *UpdateEntitlementsRequest) (*UpdateEntitlementsResponse, error) {
	done := s.calls.Begin("PATCH", "/tenants/"+tenantID+"/entitlements", req)

	resp, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		if req.Plan != nil {
			t.Plan = *req.Plan
		}
		for key, value := range req.Entitlements {
			if value == nil {
				continue
			}
			t.Entitlements[key] = value
		}
		if req.TargetIsolation != nil {
			t.IsolationModel = *req.TargetIsolation
		}
	})
	if err != nil {
		done(nil, err)
		return nil, err
	}

	out := &UpdateEntitlementsResponse{TenantID: resp.TenantID, Status: "UPDATING"}
	done(out, nil)
	return out, nil
}

// SuspendTenant overwrites status unconditionally. The reason is captured by
// the call log only; it is not persisted onto the tenant record.
func (s *Service) SuspendTenant(ctx context.Context, tenantID string, req *SuspendTenantRequest) error {
	done := s.calls.Begin("POST", "/tenants/"+tenantID+"/actions/suspend", req)

	_, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		t.Status = Suspended
	})
	if err != nil {
		done(nil, err)
		return err
	}

	logger.FromContext(ctx).Info("tenant suspended",
		zap.String("tenant_id", tenantID),
		zap.String("reason", req.Reason),
	)
	done(nil, nil)
	return nil
}

func (s *Service) ResumeTenant(ctx context.Context, tenantID string) error {
	done := s.calls.Begin("POST", "/tenants/"+tenantID+"/actions/resume", nil)

	_, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		t.Status = Ready
	})
	if err != nil {
		done(nil, err)
		return err
	}

	logger.FromContext(ctx).Info("tenant resumed", zap.String("tenant_id", tenantID))
	done(nil, nil)
	return nil
}

// DeleteTenant removes the record immediately. PreserveDataDays has no
// retention effect in this backend.
func (s *Service) DeleteTenant(ctx context.Context, tenantID string, req *DeleteTenantRequest) error {
	done := s.calls.Begin("DELETE", "/tenants/"+tenantID, req)

	tenants, err := s.store.List(ctx)
	if err != nil {
		done(nil, err)
		return err
	}

	idx := indexOf(tenants, tenantID)
	if idx < 0 {
		err := notFound(ctx, tenantID)
		done(nil, err)
		return err
	}

	tenants = append(tenants[:idx], tenants[idx+1:]...)
	if err := s.store.Put(ctx, tenants); err != nil {
		done(nil, err)
		return err
	}

	logger.FromContext(ctx).Info("tenant deleted",
		zap.String("tenant_id", tenantID),
		zap.Int("preserve_data_days", req.PreserveDataDays),
	)
	done(nil, nil)
	return nil
}

// mutate runs the read-modify-write cycle for a single tenant and bumps
// updatedAt so it strictly increases even within one clock tick.
func (s *Service) mutate(ctx context.Context, tenantID string, apply func(*Tenant)) (*Tenant, error) {
	tenants, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(tenants, tenantID)
	if idx < 0 {
		return nil, notFound(ctx, tenantID)
	}

	t := tenants[idx]
	apply(t)
	touch(t, time.Now().UTC())

	if err := s.store.Put(ctx, tenants); err != nil {
		return nil, err
	}
	return t, nil
}

func touch(t *Tenant, now time.Time) {
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now
}

func indexOf(tenants []*Tenant, tenantID string) int {
	for i, t := range tenants {
		if t.TenantID == tenantID {
			return i
		}
	}
	return -1
}

func notFound(ctx context.Context, tenantID string) error {
	logger.FromContext(ctx).Warn("tenant not found", zap.String("tenant_id", tenantID))
	return errutil.NotFound("tenant not found")
}
