package user

import "go.uber.org/fx"

var Module = fx.Module("user.module",
	fx.Provide(
		NewService,
	),
)
