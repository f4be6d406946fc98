package testutil

import (
	"testing"

	"github.com/bwmarrin/snowflake"

	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/config"
)

// NewTestCalls builds a call logger with zero simulated latency so tests
// run at full speed.
func NewTestCalls(t *testing.T) *calllog.Logger {
	t.Helper()

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to build snowflake node: %v", err)
	}

	return calllog.NewLogger(calllog.Params{Node: node, Cfg: &config.Config{}})
}
