package catalog

type PlanID string

const (
	Trial      PlanID = "trial"
	Starter    PlanID = "starter"
	Pro        PlanID = "pro"
	Enterprise PlanID = "enterprise"
)

func (p PlanID) String() string {
	switch p {
	case Trial, Starter, Pro, Enterprise:
		return string(p)
	default:
		return ""
	}
}

type IsolationModel string

const (
	Pooled      IsolationModel = "Pooled"
	SiloInVpc   IsolationModel = "SiloInVpc"
	SiloAccount IsolationModel = "SiloAccount"
)

func (m IsolationModel) String() string {
	switch m {
	case Pooled, SiloInVpc, SiloAccount:
		return string(m)
	default:
		return ""
	}
}

type BillingModel string

const (
	BillingFree   BillingModel = "free"
	BillingFlat   BillingModel = "flat"
	BillingCustom BillingModel = "custom"
)

// Baseline entitlement keys. Every tenant carries at least these five,
// whatever its plan.
const (
	KeyMaxSessions        = "dcv.maxSessions"
	KeyGPUClass           = "dcv.gpuClass"
	KeyMaxSessionDuration = "session.maxDurationMin"
	KeyStorageGB          = "storage.gb"
	KeyEgressGBPerMonth   = "egress.gbPerMonth"
)

func BaselineKeys() []string {
	return []string{
		KeyMaxSessions,
		KeyGPUClass,
		KeyMaxSessionDuration,
		KeyStorageGB,
		KeyEgressGBPerMonth,
	}
}

// Entitlements maps entitlement keys to numeric or string limits. Numeric
// values are float64 end to end because the collection round-trips through
// JSON in the entity store.
type Entitlements map[string]interface{}

func (e Entitlements) Clone() Entitlements {
	out := make(Entitlements, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

type PlanDefaults struct {
	IsolationModel IsolationModel `json:"isolationModel"`
	Entitlements   Entitlements   `json:"entitlements"`
}

type Billing struct {
	Model    BillingModel `json:"model"`
	Base     float64      `json:"base"`
	Currency string       `json:"currency"`
}

// Plan is a catalog entry. Plans are immutable at runtime and looked up by
// identifier only.
type Plan struct {
	PlanID       PlanID       `json:"planId"`
	DisplayName  string       `json:"displayName"`
	Defaults     PlanDefaults `json:"defaults"`
	Billing      Billing      `json:"billing"`
	FeatureFlags []string     `json:"featureFlags"`
}
