package dbfx

import (
	"go.uber.org/fx"
	"tripmate/internal/infra"
)

var Module = fx.Provide(infra.InitPostgresql)
