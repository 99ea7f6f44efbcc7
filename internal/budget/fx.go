package budget

import (
	"github.com/kelolahq/anggaran/internal/budget/repository"
	"github.com/kelolahq/anggaran/internal/budget/service"
	"go.uber.org/fx"
)

var Module = fx.Module("budget.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
