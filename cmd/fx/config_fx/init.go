package config_fx

import (
	"os"

	"go.uber.org/fx"

	"talentflow/internal/config"
)

var Module = fx.Provide(
	provideLoader,
	provideConfig)

func provideLoader() (*config.Loader, error) {
	root := os.Getenv("TALENTFLOW_ROOT")
	if root == "" {
		root = "."
	}
	return config.NewLoader(root)
}

func provideConfig(loader *config.Loader) *config.Config {
	return loader.Config()
}
