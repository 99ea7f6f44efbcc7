package duplicate

import "go.uber.org/fx"

var Module = fx.Module("duplicate",
	fx.Provide(NewDetector),
)
