package config_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/config"
	"tripmate/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Invoke(initLogger))

func initLogger(cfg *config.Config) {
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
}
