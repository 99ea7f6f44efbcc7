package counter

import (
	"github.com/kelolahq/anggaran/internal/counter/repository"
	"github.com/kelolahq/anggaran/internal/counter/service"
	"go.uber.org/fx"
)

var Module = fx.Module("counter.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
