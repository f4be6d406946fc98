package tenant

import (
	"time"

	"ediworks-controlplane/services/catalog"
)

type TenantType string

const (
	Org        TenantType = "ORG"
	Individual TenantType = "INDIVIDUAL"
)

func (t TenantType) String() string {
	switch t {
	case Org, Individual:
		return string(t)
	default:
		return ""
	}
}

type Status string

// Deleting and Error are declared lifecycle states that no operation in this
// backend produces. They are reserved for a future orchestration layer; do
// not add transitions into them here.
const (
	Provisioning Status = "PROVISIONING"
	Ready        Status = "READY"
	Suspended    Status = "SUSPENDED"
	Deleting     Status = "DELETING"
	Error        Status = "ERROR"
)

func (s Status) String() string {
	switch s {
	case Provisioning, Ready, Suspended, Deleting, Error:
		return string(s)
	default:
		return ""
	}
}

type ContactType string

const (
	ContactAdmin   ContactType = "ADMIN"
	ContactBilling ContactType = "BILLING"
)

type Contact struct {
	Email string      `json:"email"`
	Type  ContactType `json:"type"`
}

type OrgProfile struct {
	LegalEntity string `json:"legalEntity"`
	Seats       int    `json:"seats"`
}

// Tenant is a provisioned customer account. The entity store owns the
// canonical collection; everything else reads by identifier.
type Tenant struct {
	TenantID       string                 `json:"tenantId"`
	TenantType     TenantType             `json:"tenantType"`
	TenantName     string                 `json:"tenantName"`
	Plan           catalog.PlanID         `json:"plan"`
	IsolationModel catalog.IsolationModel `json:"isolationModel"`
	Region         string                 `json:"region"`
	Domain         string                 `json:"domain,omitempty"`
	Entitlements   catalog.Entitlements   `json:"entitlements"`
	Labels         map[string]string      `json:"labels,omitempty"`
	Tags           map[string]string      `json:"tags,omitempty"`
	Contacts       []Contact              `json:"contacts"`
	Status         Status                 `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	OrgProfile     *OrgProfile            `json:"orgProfile,omitempty"`
}

// AuthUser is the persisted "current user" record of the local login
// stand-in. The backend only stores and clears it.
type AuthUser struct {
	Sub          string `json:"sub"`
	Email        string `json:"email,omitempty"`
	PlatformRole string `json:"platformRole"`
}
