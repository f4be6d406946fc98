package catalog

// plans is the fixed catalog, in display order. trial stays first: it doubles
// as the fallback when a create request names an unknown plan.
var plans = []Plan{
	{
		PlanID:      Trial,
		DisplayName: "Trial",
		Defaults: PlanDefaults{
			IsolationModel: Pooled,
			Entitlements: Entitlements{
				KeyMaxSessions:        2.0,
				KeyGPUClass:           "none",
				KeyMaxSessionDuration: 60.0,
				KeyStorageGB:          10.0,
				KeyEgressGBPerMonth:   20.0,
			},
		},
		Billing:      Billing{Model: BillingFree, Base: 0, Currency: "USD"},
		FeatureFlags: []string{},
	},
	{
		PlanID:      Starter,
		DisplayName: "Starter",
		Defaults: PlanDefaults{
			IsolationModel: Pooled,
			Entitlements: Entitlements{
				KeyMaxSessions:        5.0,
				KeyGPUClass:           "none",
				KeyMaxSessionDuration: 240.0,
				KeyStorageGB:          100.0,
				KeyEgressGBPerMonth:   200.0,
			},
		},
		Billing:      Billing{Model: BillingFlat, Base: 49, Currency: "USD"},
		FeatureFlags: []string{"email-support"},
	},
	{
		PlanID:      Pro,
		DisplayName: "Pro",
		Defaults: PlanDefaults{
			IsolationModel: SiloInVpc,
			Entitlements: Entitlements{
				KeyMaxSessions:        25.0,
				KeyGPUClass:           "g4dn.xlarge",
				KeyMaxSessionDuration: 480.0,
				KeyStorageGB:          500.0,
				KeyEgressGBPerMonth:   1000.0,
			},
		},
		Billing:      Billing{Model: BillingFlat, Base: 199, Currency: "USD"},
		FeatureFlags: []string{"byok", "dedicated-subnet"},
	},
	{
		PlanID:      Enterprise,
		DisplayName: "Enterprise",
		Defaults: PlanDefaults{
			IsolationModel: SiloAccount,
			Entitlements: Entitlements{
				KeyMaxSessions:        100.0,
				KeyGPUClass:           "g4dn.12xlarge",
				KeyMaxSessionDuration: 1440.0,
				KeyStorageGB:          2000.0,
				KeyEgressGBPerMonth:   5000.0,
			},
		},
		Billing:      Billing{Model: BillingCustom, Base: 0, Currency: "USD"},
		FeatureFlags: []string{"byok", "dedicated-subnet", "white-glove-support"},
	},
}
