package tenant

import (
	"context"
	"time"
)

// LifecycleEvent is one entry of a tenant's provisioning timeline. Like the
// audit ledger, the timeline is a fixed fixture: no operation in this backend
// appends to it.
type LifecycleEvent struct {
	EventID   string      `json:"eventId"`
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
	Payload   interface{} `json:"payload,omitempty"`
}

// ProvisioningTask is one step of the simulated provisioning pipeline.
type ProvisioningTask struct {
	TaskID      string `json:"taskId"`
	Name        string `json:"name"`
	Status      string `json:"status"` // RUNNING | SUCCEEDED | FAILED
	Attempt     int    `json:"attempt,omitempty"`
	DurationSec int    `json:"durationSec,omitempty"`
	Error       string `json:"error,omitempty"`
}

type LifecycleEventsResponse struct {
	Items      []LifecycleEvent `json:"items"`
	NextCursor *string          `json:"nextCursor,omitempty"`
}

type ProvisioningTasksResponse struct {
	Items      []ProvisioningTask `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

var lifecycleEvents = []LifecycleEvent{
	{
		EventID:   "evt-001",
		Type:      "tenant.created",
		CreatedAt: time.Date(2025, 9, 18, 2, 30, 0, 0, time.UTC),
		Payload:   map[string]interface{}{"plan": "enterprise"},
	},
	{
		EventID:   "evt-002",
		Type:      "provisioning.started",
		CreatedAt: time.Date(2025, 9, 18, 2, 30, 5, 0, time.UTC),
	},
	{
		EventID:   "evt-003",
		Type:      "network.allocated",
		CreatedAt: time.Date(2025, 9, 18, 2, 31, 12, 0, time.UTC),
		Payload:   map[string]interface{}{"vpcId": "vpc-0a1b2c3d"},
	},
	{
		EventID:   "evt-004",
		Type:      "domain.issued",
		CreatedAt: time.Date(2025, 9, 18, 2, 33, 40, 0, time.UTC),
		Payload:   map[string]interface{}{"status": "ISSUED"},
	},
}

var provisioningTasks = []ProvisioningTask{
	{TaskID: "task-001", Name: "AllocateNetwork", Status: "SUCCEEDED", Attempt: 1, DurationSec: 67},
	{TaskID: "task-002", Name: "IssueCertificate", Status: "SUCCEEDED", Attempt: 1, DurationSec: 148},
	{TaskID: "task-003", Name: "BootstrapWorkspace", Status: "RUNNING", Attempt: 2},
	{TaskID: "task-004", Name: "RegisterDNS", Status: "FAILED", Attempt: 3, DurationSec: 12, Error: "upstream timeout"},
}

// LifecycleEvents returns the fixture timeline. Fixtures are shared across
// tenants, as in the original console; the identifier only scopes the call.
func (s *Service) LifecycleEvents(ctx context.Context, tenantID string) (*LifecycleEventsResponse, error) {
	done := s.calls.Begin("GET", "/tenants/"+tenantID+"/events", nil)

	items := make([]LifecycleEvent, len(lifecycleEvents))
	copy(items, lifecycleEvents)

	resp := &LifecycleEventsResponse{Items: items}
	done(resp, nil)
	return resp, nil
}

// ProvisioningTasks returns the fixture pipeline steps.
func (s *Service) ProvisioningTasks(ctx context.Context, tenantID string) (*ProvisioningTasksResponse, error) {
	done := s.calls.Begin("GET", "/tenants/"+tenantID+"/tasks", nil)

	items := make([]ProvisioningTask, len(provisioningTasks))
	copy(items, provisioningTasks)

	resp := &ProvisioningTasksResponse{Items: items}
	done(resp, nil)
	return resp, nil
}
