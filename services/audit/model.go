package audit

import "time"

// Entry is an immutable record of a prior privileged action. The catalog
// here is a fixed fixture: this backend does not append an entry per
// mutating call, a known gap against a real control plane.
type Entry struct {
	Timestamp time.Time   `json:"timestamp"`
	Actor     string      `json:"actor"`
	Action    string      `json:"action"`
	Before    interface{} `json:"before"`
	After     interface{} `json:"after"`
	RequestID string      `json:"requestId"`
}

type QueryRequest struct {
	TenantID string `json:"tenantId,omitempty"`
	// Actor matches as a substring; Action matches exactly.
	Actor  string `json:"actor,omitempty"`
	Action string `json:"action,omitempty"`
}

type QueryResponse struct {
	Items      []Entry `json:"items"`
	NextCursor *string `json:"nextCursor,omitempty"`
}
