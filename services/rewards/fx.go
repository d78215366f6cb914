package rewards

import (
	"go.uber.org/fx"
)

var Module = fx.Module("rewards.service",
	fx.Provide(NewService),
)
