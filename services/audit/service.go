package audit

import (
	"context"
	"strings"

	"go.uber.org/fx"

	"ediworks-controlplane/pkg/calllog"
)

// Service serves the fixed audit ledger. Entries are never mutated after
// creation; queries copy before filtering.
type Service struct {
	calls *calllog.Logger
}

type ServiceParams struct {
	fx.In
	Calls *calllog.Logger
}

func NewService(p ServiceParams) *Service {
	return &Service{calls: p.Calls}
}

// Query filters the ledger with the same conjunctive pattern tenant listing
// uses: actor by substring, action by exact match.
func (s *Service) Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	done := s.calls.Begin("GET", "/audit", req)

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if req.Actor != "" && !strings.Contains(e.Actor, req.Actor) {
			continue
		}
		if req.Action != "" && e.Action != req.Action {
			continue
		}
		out = append(out, e)
	}

	resp := &QueryResponse{Items: out}
	done(resp, nil)
	return resp, nil
}
