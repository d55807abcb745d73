package cache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"talentflow/internal/cache"
	"talentflow/internal/config"
	"talentflow/internal/infra"
)

var Module = fx.Provide(provideAssessmentCache)

// provideAssessmentCache falls back to an in-process cache when redis is not
// configured.
func provideAssessmentCache(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (cache.AssessmentCache, error) {
	if !cfg.Redis.Enabled() {
		log.Info("redis not configured, using in-memory assessment cache")
		return cache.NewMemoryAssessmentCache(cfg.Redis.TTL), nil
	}

	client, err := infra.InitRedis(context.Background(), cfg.Redis, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseRedis(client, log)
			return nil
		},
	})
	return cache.NewAssessmentCache(client, cfg.Redis.TTL), nil
}
