package user

type Role string

const (
	RoleTenantAdmin  Role = "TENANT_ADMIN"
	RoleBillingAdmin Role = "BILLING_ADMIN"
	RoleMember       Role = "MEMBER"
)

type Status string

const (
	Active   Status = "ACTIVE"
	Invited  Status = "INVITED"
	Disabled Status = "DISABLED"
)

// User belongs to exactly one tenant, referenced by tenant identifier. User
// records come from the fixture table and are not affected by tenant CRUD.
type User struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`
}

// TenantUser is a user joined with its owning tenant for cross-tenant
// listings.
type TenantUser struct {
	User
	TenantID   string `json:"tenantId"`
	TenantName string `json:"tenantName"`
}

type ListUsersRequest struct {
	Status   Status `json:"status,omitempty"`
	Role     Role   `json:"role,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
	Query    string `json:"q,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type ListUsersResponse struct {
	Items      []TenantUser `json:"items"`
	NextCursor *string      `json:"nextCursor,omitempty"`
}

type TenantUsersResponse struct {
	Items  []User     `json:"items"`
	Counts UserCounts `json:"counts"`
}

type UserCounts struct {
	Active  int `json:"active"`
	Invited int `json:"invited"`
}

type SeatSummary struct {
	Quota          int `json:"quota"`
	Used           int `json:"used"`
	PendingInvites int `json:"pendingInvites"`
}

type StatsResponse struct {
	Total     int                    `json:"total"`
	Active    int                    `json:"active"`
	Invited   int                    `json:"invited"`
	Suspended int                    `json:"suspended"`
	ByTenant  map[string]TenantCount `json:"byTenant"`
	ByRole    map[string]int         `json:"byRole"`
}

type TenantCount struct {
	TenantName string `json:"tenantName"`
	Count      int    `json:"count"`
}

type InviteUserRequest struct {
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	SendEmail bool   `json:"sendEmail"`
}

type UpdateUserRequest struct {
	Role   Role   `json:"role,omitempty"`
	Status Status `json:"status,omitempty"`
}
