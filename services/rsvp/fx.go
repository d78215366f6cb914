package rsvp

import (
	"go.uber.org/fx"
)

var Module = fx.Module("rsvp.service",
	fx.Provide(NewService),
)
