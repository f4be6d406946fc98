package main

import (
	"go.uber.org/fx"

	"ediworks-controlplane/internal/httpapi"
	"ediworks-controlplane/internal/server"
	"ediworks-controlplane/pkg/calllog"
	"ediworks-controlplane/pkg/config"
	"ediworks-controlplane/pkg/gen"
	"ediworks-controlplane/pkg/kv"
	"ediworks-controlplane/pkg/logger"
	"ediworks-controlplane/pkg/otelcol"
	"ediworks-controlplane/services/audit"
	"ediworks-controlplane/services/catalog"
	"ediworks-controlplane/services/domain"
	"ediworks-controlplane/services/tenant"
	"ediworks-controlplane/services/usage"
	"ediworks-controlplane/services/user"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		otelcol.Module,
		gen.Module,
		kv.Module,
		calllog.Module,

		catalog.Module,
		domain.Module,
		tenant.Module,
		user.Module,
		audit.Module,
		usage.Module,

		httpapi.Module,
		server.Module,
	)

	app.Run()
}
