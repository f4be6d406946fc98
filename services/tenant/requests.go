package tenant

import "ediworks-controlplane/services/catalog"

type ListTenantsRequest struct {
	Type           TenantType             `json:"type,omitempty"`
	Plan           catalog.PlanID         `json:"plan,omitempty"`
	Status         Status                 `json:"status,omitempty"`
	IsolationModel catalog.IsolationModel `json:"isolationModel,omitempty"`
	Region         string                 `json:"region,omitempty"`
	Query          string                 `json:"q,omitempty"`
	Limit          int                    `json:"limit,omitempty"`
}

type ListTenantsResponse struct {
	Items []*Tenant `json:"items"`
	// NextCursor is always absent: this backend truncates instead of paging.
	NextCursor *string `json:"nextCursor,omitempty"`
}

type CreateTenantRequest struct {
	TenantType     TenantType             `json:"tenantType"`
	TenantName     string                 `json:"tenantName"`
	Plan           catalog.PlanID         `json:"plan"`
	IsolationModel catalog.IsolationModel `json:"isolationModel"`
	Region         string                 `json:"region"`
	Domain         string                 `json:"domain,omitempty"`
	Contact        ContactRef             `json:"contact"`
	OrgProfile     *OrgProfile            `json:"orgProfile,omitempty"`
	Labels         map[string]string      `json:"labels,omitempty"`
	Tags           map[string]string      `json:"tags,omitempty"`
}

type ContactRef struct {
	Email string `json:"email"`
}

type CreateTenantResponse struct {
	TenantID string         `json:"tenantId"`
	Status   Status         `json:"status"`
	Plan     catalog.PlanID `json:"plan"`
}

// UpdateTenantRequest is a generic partial update: only the fields it
// carries are applied, everything else on the record is untouched.
type UpdateTenantRequest struct {
	TenantName *string           `json:"tenantName,omitempty"`
	Region     *string           `json:"region,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
	Tags       map[string]string `json:"tags,omitempty"`
	Contacts   []Contact         `json:"contacts,omitempty"`
	OrgProfile *OrgProfile       `json:"orgProfile,omitempty"`
}

type UpdateSeatsRequest struct {
	Quota int `json:"quota"`
}

// UpdateEntitlementsRequest merges only the entitlement keys it carries;
// plan and isolation model, when present, are replaced wholesale.
type UpdateEntitlementsRequest struct {
	Plan            *catalog.PlanID         `json:"plan,omitempty"`
	Entitlements    catalog.Entitlements    `json:"entitlements,omitempty"`
	TargetIsolation *catalog.IsolationModel `json:"targetIsolation,omitempty"`
}

type UpdateEntitlementsResponse struct {
	TenantID string `json:"tenantId"`
	Status   string `json:"status"`
}

type SuspendTenantRequest struct {
	Reason string `json:"reason"`
}

type DeleteTenantRequest struct {
	// PreserveDataDays is accepted for API compatibility; this backend
	// removes the record immediately and keeps nothing.
	PreserveDataDays int `json:"preserveDataDays"`
}
