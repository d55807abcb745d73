package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"talentflow/internal/config"
	"talentflow/internal/infra"
	"talentflow/internal/logging"
	"talentflow/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	app := &cli.App{
		Name:  "seed",
		Usage: "fill an empty TalentFlow database with generated jobs, candidates and assessments",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Value: ".", Usage: "project root holding .env and config/"},
			&cli.IntFlag{Name: "jobs", Value: defaults.Jobs},
			&cli.IntFlag{Name: "candidates", Value: defaults.Candidates},
			&cli.IntFlag{Name: "assessments", Value: defaults.Assessments},
			&cli.Int64Flag{Name: "seed", Value: defaults.Seed, Usage: "random seed, fixed for reproducible data"},
			&cli.StringFlag{Name: "template", Usage: "YAML assessment template, the built-in one when empty"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	loader, err := config.NewLoader(c.String("root"))
	if err != nil {
		return err
	}
	cfg := loader.Config()
	cfg.Database.AutoMigrate = true

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	tmpl, err := loadTemplate(c.String("template"))
	if err != nil {
		return err
	}

	db, err := infra.InitPostgresql(cfg.Database, log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, log)

	start := time.Now()
	seeded, err := seed.NewSeeder(db, log, tmpl).Run(c.Context, seed.Options{
		Jobs:        c.Int("jobs"),
		Candidates:  c.Int("candidates"),
		Assessments: c.Int("assessments"),
		Seed:        c.Int64("seed"),
	})
	if err != nil {
		return err
	}
	if seeded {
		log.Info("seed finished", zap.Duration("took", time.Since(start)), zap.Int64("seed", c.Int64("seed")))
	}
	return nil
}

func loadTemplate(path string) (*seed.Template, error) {
	if path == "" {
		return seed.DefaultTemplate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.ParseTemplate(data)
}
