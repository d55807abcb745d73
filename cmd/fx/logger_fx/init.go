package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"talentflow/internal/config"
	"talentflow/internal/logging"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}
