package user

// usersByTenant is the fixture table, keyed by tenant id. Tenants without an
// entry fall back to defaultUsers, mirroring how an empty directory still
// renders something useful in the console.
var usersByTenant = map[string][]User{
	"acme": {
		{UserID: "u-acme-001", Email: "admin@acme.example", Role: RoleTenantAdmin, Status: Active},
		{UserID: "u-acme-002", Email: "finance@acme.example", Role: RoleBillingAdmin, Status: Active},
		{UserID: "u-acme-003", Email: "dana@acme.example", Role: RoleMember, Status: Active},
		{UserID: "u-acme-004", Email: "jordan@acme.example", Role: RoleMember, Status: Invited},
		{UserID: "u-acme-005", Email: "sam@acme.example", Role: RoleMember, Status: Disabled},
	},
	"globex": {
		{UserID: "u-globex-001", Email: "hank@globex.example", Role: RoleTenantAdmin, Status: Active},
		{UserID: "u-globex-002", Email: "billing@globex.example", Role: RoleBillingAdmin, Status: Active},
		{UserID: "u-globex-003", Email: "lena@globex.example", Role: RoleMember, Status: Invited},
	},
	"initech": {
		{UserID: "u-initech-001", Email: "bill@initech.example", Role: RoleTenantAdmin, Status: Active},
		{UserID: "u-initech-002", Email: "peter@initech.example", Role: RoleMember, Status: Disabled},
	},
	"umbrella": {
		{UserID: "u-umbrella-001", Email: "ops@umbrella.example", Role: RoleTenantAdmin, Status: Active},
		{UserID: "u-umbrella-002", Email: "lab@umbrella.example", Role: RoleMember, Status: Invited},
	},
	"hooli-dev": {
		{UserID: "u-hooli-001", Email: "gavin@hooli.example", Role: RoleTenantAdmin, Status: Active},
	},
}

var defaultUsers = []User{
	{UserID: "u-default-001", Email: "owner@tenant.example", Role: RoleTenantAdmin, Status: Active},
	{UserID: "u-default-002", Email: "member@tenant.example", Role: RoleMember, Status: Invited},
}
