package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/config"
	"github.com/kelolahq/anggaran/internal/migration"
	"github.com/kelolahq/anggaran/internal/observability"
	"github.com/kelolahq/anggaran/internal/scheduler"
	"github.com/kelolahq/anggaran/internal/server"
	"github.com/kelolahq/anggaran/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		migration.Module,
		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
