package categorybudget

import (
	"github.com/kelolahq/anggaran/internal/categorybudget/repository"
	"github.com/kelolahq/anggaran/internal/categorybudget/service"
	"go.uber.org/fx"
)

var Module = fx.Module("categorybudget.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
