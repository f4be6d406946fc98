package tenant

import (
	"time"

	"ediworks-controlplane/services/catalog"
)

// seedTenants is the built-in fixture set the store installs on first read of
// an empty backend. Ordering is newest-first, matching the ordering contract
// of the live collection.
func seedTenants() []*Tenant {
	return []*Tenant{
		{
			TenantID:       "umbrella",
			TenantType:     Org,
			TenantName:     "umbrella",
			Plan:           catalog.Enterprise,
			IsolationModel: catalog.SiloAccount,
			Region:         "ap-northeast-2",
			Domain:         "e-umbrella.ediworks.com",
			Entitlements: catalog.Entitlements{
				catalog.KeyMaxSessions:        100.0,
				catalog.KeyGPUClass:           "g4dn.12xlarge",
				catalog.KeyMaxSessionDuration: 1440.0,
				catalog.KeyStorageGB:          2000.0,
				catalog.KeyEgressGBPerMonth:   5000.0,
			},
			Labels:   map[string]string{"env": "staging"},
			Tags:     map[string]string{"industry": "pharma"},
			Contacts: []Contact{{Email: "ops@umbrella.example", Type: ContactAdmin}},
			Status:   Provisioning,
			CreatedAt: time.Date(2025, 9, 18, 2, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 9, 18, 2, 30, 0, 0, time.UTC),
			OrgProfile: &OrgProfile{
				LegalEntity: "Umbrella Holdings Inc.",
				Seats:       120,
			},
		},
		{
			TenantID:       "hooli-dev",
			TenantType:     Individual,
			TenantName:     "hooli-dev",
			Plan:           catalog.Starter,
			IsolationModel: catalog.Pooled,
			Region:         "us-west-2",
			Entitlements: catalog.Entitlements{
				catalog.KeyMaxSessions:        5.0,
				catalog.KeyGPUClass:           "none",
				catalog.KeyMaxSessionDuration: 240.0,
				catalog.KeyStorageGB:          100.0,
				catalog.KeyEgressGBPerMonth:   200.0,
			},
			Contacts:  []Contact{{Email: "gavin@hooli.example", Type: ContactAdmin}},
			Status:    Ready,
			CreatedAt: time.Date(2025, 8, 30, 11, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 9, 2, 9, 15, 0, 0, time.UTC),
		},
		{
			TenantID:       "initech",
			TenantType:     Org,
			TenantName:     "initech",
			Plan:           catalog.Trial,
			IsolationModel: catalog.Pooled,
			Region:         "ap-northeast-2",
			Domain:         "t-initech.ediworks.com",
			Entitlements: catalog.Entitlements{
				catalog.KeyMaxSessions:        2.0,
				catalog.KeyGPUClass:           "none",
				catalog.KeyMaxSessionDuration: 60.0,
				catalog.KeyStorageGB:          10.0,
				catalog.KeyEgressGBPerMonth:   20.0,
			},
			Labels:    map[string]string{"env": "trial"},
			Contacts:  []Contact{{Email: "bill@initech.example", Type: ContactAdmin}},
			Status:    Suspended,
			CreatedAt: time.Date(2025, 8, 12, 4, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 9, 10, 6, 0, 0, 0, time.UTC),
			OrgProfile: &OrgProfile{
				LegalEntity: "Initech LLC",
				Seats:       5,
			},
		},
		{
			TenantID:       "globex",
			TenantType:     Org,
			TenantName:     "globex",
			Plan:           catalog.Starter,
			IsolationModel: catalog.Pooled,
			Region:         "eu-central-1",
			Domain:         "s-globex.ediworks.com",
			Entitlements: catalog.Entitlements{
				catalog.KeyMaxSessions:        5.0,
				catalog.KeyGPUClass:           "none",
				catalog.KeyMaxSessionDuration: 240.0,
				catalog.KeyStorageGB:          100.0,
				catalog.KeyEgressGBPerMonth:   200.0,
			},
			Contacts: []Contact{
				{Email: "hank@globex.example", Type: ContactAdmin},
				{Email: "billing@globex.example", Type: ContactBilling},
			},
			Status:    Ready,
			CreatedAt: time.Date(2025, 7, 22, 13, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 8, 28, 10, 5, 0, 0, time.UTC),
			OrgProfile: &OrgProfile{
				LegalEntity: "Globex International B.V.",
				Seats:       10,
			},
		},
		{
			TenantID:       "acme",
			TenantType:     Org,
			TenantName:     "acme",
			Plan:           catalog.Pro,
			IsolationModel: catalog.SiloInVpc,
			Region:         "ap-northeast-2",
			Domain:         "p-acme.ediworks.com",
			Entitlements: catalog.Entitlements{
				catalog.KeyMaxSessions:        25.0,
				catalog.KeyGPUClass:           "g4dn.xlarge",
				catalog.KeyMaxSessionDuration: 480.0,
				catalog.KeyStorageGB:          500.0,
				catalog.KeyEgressGBPerMonth:   1000.0,
			},
			Labels: map[string]string{"env": "production"},
			Tags:   map[string]string{"industry": "design"},
			Contacts: []Contact{
				{Email: "admin@acme.example", Type: ContactAdmin},
				{Email: "finance@acme.example", Type: ContactBilling},
			},
			Status:    Ready,
			CreatedAt: time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 9, 14, 16, 40, 0, 0, time.UTC),
			OrgProfile: &OrgProfile{
				LegalEntity: "Acme Corporation",
				Seats:       25,
			},
		},
	}
}
