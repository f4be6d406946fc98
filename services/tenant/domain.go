package tenant

import (
	"context"

	"go.uber.org/zap"

	"ediworks-controlplane/pkg/logger"
)

// DomainInfo is a fixture-shaped projection of a tenant's hostname binding.
// The infrastructure identifiers are static placeholders; no load balancer
// rule or certificate is ever issued.
type DomainInfo struct {
	Domain         string `json:"domain"`
	ALBRuleID      string `json:"albRuleId"`
	TargetGroupARN string `json:"targetGroupArn"`
	CertificateARN string `json:"certificateArn"`
	Status         string `json:"status"`
}

type CreateDomainRequest struct {
	Subdomain string `json:"subdomain"`
	Listener  string `json:"listener"`
}

type CreateDomainResponse struct {
	Domain string `json:"domain"`
	Status string `json:"status"`
}

// GetDomain reports the tenant's bound hostname, deriving one from the
// tenant name when no binding exists.
func (s *Service) GetDomain(ctx context.Context, tenantID string) (*DomainInfo, error) {
	done := s.calls.Begin("GET", "/tenants/"+tenantID+"/domain", nil)

	t, err := s.store.Get(ctx, tenantID)
	if err != nil {
		done(nil, err)
		return nil, err
	}

	hostname := t.Domain
	if hostname == "" {
		hostname = s.namer.Derive(t.TenantName, t.Plan)
	}

	resp := &DomainInfo{
		Domain:         hostname,
		ALBRuleID:      "rule-xyz",
		TargetGroupARN: "arn:aws:elasticloadbalancing:...",
		CertificateARN: "arn:aws:acm:...",
		Status:         "ISSUED",
	}
	done(resp, nil)
	return resp, nil
}

// CreateDomain binds a hostname built from the requested subdomain and the
// configured root, persisting it onto the tenant record.
func (s *Service) CreateDomain(ctx context.Context, tenantID string, req *CreateDomainRequest) (*CreateDomainResponse, error) {
	done := s.calls.Begin("POST", "/tenants/"+tenantID+"/domain", req)

	hostname := req.Subdomain + "." + s.namer.Suffix()
	_, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		t.Domain = hostname
	})
	if err != nil {
		done(nil, err)
		return nil, err
	}

	logger.FromContext(ctx).Info("domain bound",
		zap.String("tenant_id", tenantID),
		zap.String("domain", hostname),
	)

	resp := &CreateDomainResponse{Domain: hostname, Status: "ISSUED"}
	done(resp, nil)
	return resp, nil
}

// DeleteDomain clears the binding.
func (s *Service) DeleteDomain(ctx context.Context, tenantID string) error {
	done := s.calls.Begin("DELETE", "/tenants/"+tenantID+"/domain", nil)

	_, err := s.mutate(ctx, tenantID, func(t *Tenant) {
		t.Domain = ""
	})
	if err != nil {
		done(nil, err)
		return err
	}

	logger.FromContext(ctx).Info("domain unbound", zap.String("tenant_id", tenantID))
	done(nil, nil)
	return nil
}
