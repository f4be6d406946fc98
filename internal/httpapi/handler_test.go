package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ediworks-controlplane/pkg/kv"
	"ediworks-controlplane/services/audit"
	"ediworks-controlplane/services/catalog"
	"ediworks-controlplane/services/domain"
	"ediworks-controlplane/services/tenant"
	"ediworks-controlplane/services/testutil"
	"ediworks-controlplane/services/usage"
	"ediworks-controlplane/services/user"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := testutil.NewTestConfig()
	calls := testutil.NewTestCalls(t)
	store := tenant.NewStore(tenant.StoreParams{KV: kv.NewMemory()})
	plans := catalog.NewService(catalog.ServiceParams{Calls: calls})
	namer := domain.NewNamer(domain.NamerParams{Cfg: cfg})

	tenants := tenant.NewService(tenant.ServiceParams{
		Store: store,
		Plans: plans,
		Namer: namer,
		Calls: calls,
	})
	users := user.NewService(user.ServiceParams{Store: store, Calls: calls})
	auditor := audit.NewService(audit.ServiceParams{Calls: calls})
	engine := usage.NewEngine(usage.EngineParams{Config: cfg, Store: store, Calls: calls})

	h := NewHandler(HandlerParams{
		Plans:   plans,
		Tenants: tenants,
		Store:   store,
		Users:   users,
		Audit:   auditor,
		Usage:   engine,
		Calls:   calls,
	})
	return ProvideRouter(h)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload.Error.Code
}

func TestRouter_ListTenants(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/tenants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 5)
}

func TestRouter_GetTenantNotFoundMapsTo404(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/tenants/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestRouter_CreateTenantValidation(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/tenants", map[string]interface{}{
		"tenantType": "ORG",
		"plan":       "pro",
		"region":     "us-east-1",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestRouter_CreateTenantHappyPath(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/tenants", map[string]interface{}{
		"tenantType": "ORG",
		"tenantName": "Wayne Enterprises",
		"plan":       "pro",
		"region":     "us-east-1",
		"contact":    map[string]string{"email": "bruce@wayne.example"},
		"orgProfile": map[string]interface{}{"legalEntity": "Wayne Enterprises Inc.", "seats": 50},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		TenantID string `json:"tenantId"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "PROVISIONING", resp.Status)
	require.NotEmpty(t, resp.TenantID)
}

func TestRouter_AnalyticsForbiddenMapsTo403(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/usage/analytics/globex?period=week", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "FORBIDDEN", errorCode(t, w))
}

func TestRouter_SuspendResumeFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/tenants/acme/actions/suspend", map[string]string{"reason": "abuse"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/tenants/acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "SUSPENDED", got["status"])

	w = do(t, r, http.MethodPost, "/tenants/acme/actions/resume", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_PatchTenant(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPatch, "/tenants/acme", map[string]interface{}{
		"tenantName": "Acme Corp",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Acme Corp", got["tenantName"])
	require.Equal(t, "pro", got["plan"])

	w = do(t, r, http.MethodPatch, "/tenants/ghost", map[string]interface{}{})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_PatchSeats(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPatch, "/tenants/acme/seats", map[string]int{"quota": 0})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, w))

	w = do(t, r, http.MethodPatch, "/tenants/acme/seats", map[string]int{"quota": 40})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/tenants/acme/seats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var seats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seats))
	require.Equal(t, float64(40), seats["quota"])
}

func TestRouter_TenantEventsAndTasks(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/tenants/umbrella/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events.Items, 4)
	require.Equal(t, "tenant.created", events.Items[0]["type"])

	w = do(t, r, http.MethodGet, "/tenants/umbrella/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks.Items, 4)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// Drive one instrumented call so the counters have been touched.
	do(t, r, http.MethodGet, "/plans", nil)

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "console_calls_total")
	require.Contains(t, w.Body.String(), "console_call_duration_seconds")
}

func TestRouter_ResetReseeds(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodDelete, "/tenants/acme", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodPost, "/reset", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/tenants/acme", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CallLogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodGet, "/plans", nil)

	w := do(t, r, http.MethodGet, "/calls", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Items)

	w = do(t, r, http.MethodDelete, "/calls", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_UsageSeriesRejectsBadTimestamps(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/usage/series?metric=compute&from=yesterday&to=today", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "BAD_REQUEST", errorCode(t, w))
}

func TestRouter_CurrentUserLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPut, "/auth/me", map[string]string{
		"sub":          "auth0|123",
		"email":        "admin@ediworks.com",
		"platformRole": "PLATFORM_ADMIN",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodDelete, "/auth/me", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
