package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"talentflow/internal/config"
	"talentflow/pkg/utils"
)

var Module = fx.Provide(provideTokenManager)

func provideTokenManager(cfg *config.Config, log *zap.Logger) *utils.TokenManager {
	if !cfg.Auth.Enabled() {
		log.Warn("auth.jwt_secret is empty, write routes are not protected")
	}
	return utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
