package buddy

import (
	"go.uber.org/fx"
)

var Module = fx.Module("buddy.service",
	fx.Provide(NewService),
)
