package audit

import "time"

var entries = []Entry{
	{
		Timestamp: time.Date(2025, 9, 14, 16, 40, 12, 0, time.UTC),
		Actor:     "admin@ediworks.com",
		Action:    "tenant.entitlements.update",
		Before:    map[string]interface{}{"dcv.maxSessions": 10.0},
		After:     map[string]interface{}{"dcv.maxSessions": 25.0},
		RequestID: "req-1966741822345678848",
	},
	{
		Timestamp: time.Date(2025, 9, 10, 6, 0, 3, 0, time.UTC),
		Actor:     "admin@ediworks.com",
		Action:    "tenant.suspend",
		Before:    map[string]interface{}{"status": "READY"},
		After:     map[string]interface{}{"status": "SUSPENDED"},
		RequestID: "req-1965115522190012416",
	},
	{
		Timestamp: time.Date(2025, 9, 2, 9, 15, 44, 0, time.UTC),
		Actor:     "reviewer@ediworks.com",
		Action:    "tenant.plan.update",
		Before:    map[string]interface{}{"plan": "trial"},
		After:     map[string]interface{}{"plan": "starter"},
		RequestID: "req-1962261933812736000",
	},
	{
		Timestamp: time.Date(2025, 8, 28, 10, 5, 21, 0, time.UTC),
		Actor:     "admin@ediworks.com",
		Action:    "tenant.resume",
		Before:    map[string]interface{}{"status": "SUSPENDED"},
		After:     map[string]interface{}{"status": "READY"},
		RequestID: "req-1960452480237568000",
	},
	{
		Timestamp: time.Date(2025, 8, 12, 4, 45, 9, 0, time.UTC),
		Actor:     "provisioner@ediworks.com",
		Action:    "tenant.create",
		Before:    nil,
		After:     map[string]interface{}{"tenantId": "initech", "plan": "trial"},
		RequestID: "req-1954577399103488000",
	},
	{
		Timestamp: time.Date(2025, 7, 30, 15, 30, 58, 0, time.UTC),
		Actor:     "admin@ediworks.com",
		Action:    "user.invite",
		Before:    nil,
		After:     map[string]interface{}{"email": "jordan@acme.example", "role": "MEMBER"},
		RequestID: "req-1950031324891136000",
	},
}
