package audit

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

func TestService_QueryAll(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), &QueryRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 6)
	require.Nil(t, resp.NextCursor)
}

func TestService_QueryActorSubstring(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), &QueryRequest{Actor: "reviewer"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "tenant.plan.update", resp.Items[0].Action)
}

func TestService_QueryActionExact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Query(ctx, &QueryRequest{Action: "tenant.suspend"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	// Exact match only: a prefix does not qualify.
	resp, err = svc.Query(ctx, &QueryRequest{Action: "tenant"})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
}

func TestService_QueryConjunctive(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Query(context.Background(), &QueryRequest{Actor: "admin", Action: "tenant.resume"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "admin@ediworks.com", resp.Items[0].Actor)
}
