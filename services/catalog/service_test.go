package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ediworks-controlplane/services/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(ServiceParams{Calls: testutil.NewTestCalls(t)})
}

func TestService_ListPlansOrder(t *testing.T) {
	svc := newTestService(t)

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 4)

	got := make([]PlanID, 0, len(plans))
	for _, p := range plans {
		got = append(got, p.PlanID)
	}
	require.Equal(t, []PlanID{Trial, Starter, Pro, Enterprise}, got)
}

func TestService_ListPlansReturnsCopy(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	first[0].DisplayName = "mutated"

	second, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, "mutated", second[0].DisplayName)
}

func TestService_GetPlan(t *testing.T) {
	svc := newTestService(t)

	plan, err := svc.GetPlan(context.Background(), Pro)
	require.NoError(t, err)
	require.Equal(t, Pro, plan.PlanID)
	require.Equal(t, "flat", string(plan.Billing.Model))

	_, err = svc.GetPlan(context.Background(), PlanID("platinum"))
	require.Error(t, err)
}

func TestService_EveryPlanCarriesBaselineKeys(t *testing.T) {
	svc := newTestService(t)

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)

	for _, p := range plans {
		for _, key := range BaselineKeys() {
			require.Contains(t, p.Defaults.Entitlements, key, "plan %s missing %s", p.PlanID, key)
		}
	}
}

func TestService_EntitlementDefaults(t *testing.T) {
	svc := newTestService(t)

	ents := svc.EntitlementDefaults(Starter)
	require.Equal(t, 5.0, ents[KeyMaxSessions])

	// Unknown plans fall back to the first catalog entry.
	fallback := svc.EntitlementDefaults(PlanID("platinum"))
	require.Equal(t, svc.EntitlementDefaults(Trial), fallback)
}

func TestService_EntitlementDefaultsIsolated(t *testing.T) {
	svc := newTestService(t)

	a := svc.EntitlementDefaults(Pro)
	a[KeyMaxSessions] = 999.0

	b := svc.EntitlementDefaults(Pro)
	require.Equal(t, 25.0, b[KeyMaxSessions])
}
