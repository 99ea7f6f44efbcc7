package masterdata

import (
	"github.com/kelolahq/anggaran/internal/masterdata/repository"
	"github.com/kelolahq/anggaran/internal/masterdata/service"
	"go.uber.org/fx"
)

var Module = fx.Module("masterdata.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
