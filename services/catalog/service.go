package catalog

import (
	"context"

	"go.uber.org/fx"

	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/errutil"
)

// Service serves the immutable plan catalog.
type Service struct {
	plans []Plan
	index map[PlanID]Plan
	calls *calllog.Logger
}

type ServiceParams struct {
	fx.In
	Calls *calllog.Logger
}

func NewService(p ServiceParams) *Service {
	index := make(map[PlanID]Plan, len(plans))
	for _, plan := range plans {
		index[plan.PlanID] = plan
	}
	return &Service{
		plans: plans,
		index: index,
		calls: p.Calls,
	}
}

func (s *Service) ListPlans(ctx context.Context) ([]Plan, error) {
	done := s.calls.Begin("GET", "/plans", nil)

	out := make([]Plan, len(s.plans))
	copy(out, s.plans)

	done(out, nil)
	return out, nil
}

func (s *Service) GetPlan(ctx context.Context, planID PlanID) (*Plan, error) {
	done := s.calls.Begin("GET", "/plans/"+string(planID), nil)

	plan, ok := s.index[planID]
	if !ok {
		err := errutil.NotFound("plan not found")
		done(nil, err)
		return nil, err
	}

	done(plan, nil)
	return &plan, nil
}

// EntitlementDefaults resolves a plan's default entitlement bundle, falling
// back to the first catalog entry when the plan is unknown. Create requests
// rely on this so a bad plan id still produces a usable tenant; the tenant
// keeps whatever plan id was requested.
func (s *Service) EntitlementDefaults(planID PlanID) Entitlements {
	if plan, ok := s.index[planID]; ok {
		return plan.Defaults.Entitlements.Clone()
	}
	return s.plans[0].Defaults.Entitlements.Clone()
}
