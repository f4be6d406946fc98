package testutil

import "ediworks-controlplane/pkg/config"

// NewTestConfig returns a config with the local-use defaults tests rely on
// and zero simulated latency.
func NewTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AppEnv = "test"
	cfg.RootDomain = "ediworks.com"
	cfg.Store.Backend = "memory"
	cfg.Analytics.Tenant = "acme"
	cfg.Analytics.Seed = 1
	return cfg
}
